package models

// DashboardSummary counts the main record kinds.
type DashboardSummary struct {
	Users       int `json:"users"`
	Airports    int `json:"airports"`
	Inspections int `json:"inspections"`
	Issues      int `json:"issues"`
}

// RoleCounts maps every known role to its number of accounts.
type RoleCounts map[Role]int

// InspectionStats splits inspections by completion.
type InspectionStats struct {
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
}

// IssueStats splits issues by resolution.
type IssueStats struct {
	Resolved   int `json:"resolved"`
	Unresolved int `json:"unresolved"`
}
