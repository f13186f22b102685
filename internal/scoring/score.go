// Package scoring rates ads by click efficiency weighted by source.
package scoring

import "math"

// DefaultWeight applies to sources without an explicit weight.
const DefaultWeight = 1.0

// Sources lists the known ad sources in display order.
var Sources = []string{"Facebook", "X", "Instagram", "Google", "TikTok", "Flyers", "Billboard", "Unknown"}

var sourceWeights = map[string]float64{
	"Facebook":  1.2,
	"X":         1.1,
	"Instagram": 1.3,
	"Google":    1.4,
	"TikTok":    1.5,
	"Flyers":    0.5,
	"Billboard": 0.8,
	"Unknown":   0.1,
}

// Weight returns the multiplier for source. Matching is case-sensitive.
func Weight(source string) float64 {
	if w, ok := sourceWeights[source]; ok {
		return w
	}
	return DefaultWeight
}

// CalculateScore returns clicks/cost scaled by the source weight and by 10,
// rounded to two decimals. A zero cost scores 0.
func CalculateScore(clickCount int64, cost float64, source string) float64 {
	if cost == 0 {
		return 0
	}
	raw := float64(clickCount) / cost
	return Round2(raw * Weight(source) * 10)
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
