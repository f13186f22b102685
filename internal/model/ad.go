package model

// DefaultAdType is stored when an ad is created without a type.
const DefaultAdType = "online"

// Ad is a stored advertising record.
type Ad struct {
	ID          int64   `json:"id"`
	ProjectName string  `json:"project_name"`
	ProjectID   string  `json:"project_id"`
	Source      string  `json:"source"`
	SourceURL   *string `json:"source_url"`
	Type        string  `json:"type"`
	ClickCount  int64   `json:"click_count"`
	Cost        float64 `json:"cost"`
	Score       float64 `json:"score"`
}

// AdCreate is the accepted input for a new ad. Numeric fields are pointers
// so that an omitted field can be told apart from an explicit zero; all
// fields except SourceURL are required.
type AdCreate struct {
	ProjectName string   `json:"project_name"`
	ProjectID   string   `json:"project_id"`
	Source      string   `json:"source"`
	SourceURL   *string  `json:"source_url"`
	ClickCount  *int64   `json:"click_count"`
	Cost        *float64 `json:"cost"`
	Score       *float64 `json:"score"`
}

// DashboardStats aggregates all stored ads.
type DashboardStats struct {
	TotalProjects int64   `json:"total_projects"`
	TotalClicks   int64   `json:"total_clicks"`
	TotalCost     float64 `json:"total_cost"`
	AverageScore  float64 `json:"average_score"`
}

// ListAdsRequest pages through ads ordered by id.
type ListAdsRequest struct {
	Skip  int
	Limit int
}
