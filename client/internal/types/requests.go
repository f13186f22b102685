package types

// ------------------------------
// Request Types
// ------------------------------

// CreateAdRequest holds parameters for a new ad. A zero Score asks the
// service to compute one from clicks, cost and source.
type CreateAdRequest struct {
	ProjectName string  `json:"project_name"`
	ProjectID   string  `json:"project_id"`
	Source      string  `json:"source"`
	SourceURL   *string `json:"source_url,omitempty"`
	ClickCount  int64   `json:"click_count"`
	Cost        float64 `json:"cost"`
	Score       float64 `json:"score"`
}
