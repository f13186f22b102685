package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Ad is a stored advertising record as returned by the ads service.
type Ad struct {
	ID          int64   `json:"id"`
	ProjectName string  `json:"project_name"`
	ProjectID   string  `json:"project_id"`
	Source      string  `json:"source"`
	SourceURL   *string `json:"source_url,omitempty"`
	Type        string  `json:"type,omitempty"`
	ClickCount  int64   `json:"click_count"`
	Cost        float64 `json:"cost"`
	Score       float64 `json:"score"`
}

// DashboardStats aggregates all stored ads.
type DashboardStats struct {
	TotalProjects int64   `json:"total_projects"`
	TotalClicks   int64   `json:"total_clicks"`
	TotalCost     float64 `json:"total_cost"`
	AverageScore  float64 `json:"average_score"`
}
