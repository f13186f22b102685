// Package mockdata produces randomized but plausible ads for seeding a
// development backend.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/diamondjirapat/mango-reach-management-mockup/client"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/scoring"
)

var projectWords = []string{"Alpha", "Beta", "Gamma", "Delta", "Omega"}

const (
	minClicks = 10
	maxClicks = 10000
	minCost   = 10.0
	maxCost   = 5000.0
)

// Generate returns n ads drawn from rng. The score of each ad is precomputed.
func Generate(rng *rand.Rand, n int) []client.CreateAdRequest {
	if n <= 0 {
		return nil
	}
	out := make([]client.CreateAdRequest, 0, n)
	for range n {
		out = append(out, One(rng))
	}
	return out
}

// One returns a single generated ad.
func One(rng *rand.Rand) client.CreateAdRequest {
	projectID := fmt.Sprintf("PROJ-%d", 1000+rng.IntN(9000))
	name := fmt.Sprintf("Project %s %d", projectWords[rng.IntN(len(projectWords))], 1+rng.IntN(100))
	source := scoring.Sources[rng.IntN(len(scoring.Sources))]
	sourceURL := fmt.Sprintf("http://%s.com/%s", strings.ToLower(source), projectID)
	clicks := int64(minClicks + rng.IntN(maxClicks-minClicks+1))
	cost := scoring.Round2(minCost + rng.Float64()*(maxCost-minCost))

	return client.CreateAdRequest{
		ProjectName: name,
		ProjectID:   projectID,
		Source:      source,
		SourceURL:   &sourceURL,
		ClickCount:  clicks,
		Cost:        cost,
		Score:       scoring.CalculateScore(clicks, cost, source),
	}
}
