package dto

// UserStatsResponse is the role-branched count summary.
type UserStatsResponse struct {
	Total    int64 `json:"total"`
	Resolved int64 `json:"resolved"`
	Pending  int64 `json:"pending"`
}

// GroupCountResponse is a chart-friendly {name, count} pair.
type GroupCountResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DetailedStatsResponse holds group-by counts for the warden dashboard.
type DetailedStatsResponse struct {
	ByCategory []GroupCountResponse `json:"byCategory"`
	ByStatus   []GroupCountResponse `json:"byStatus"`
	ByPriority []GroupCountResponse `json:"byPriority"`
}
