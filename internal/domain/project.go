package domain

import "time"

// ProjectStat is a single value/label pair shown on a project page
// ("250+ guests", "3 stages", ...). Order is significant.
type ProjectStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Project is a portfolio entry. Views is a denormalized counter incremented
// once per recorded project-view event; the analytics event log remains the
// source of truth.
type Project struct {
	ID         string
	MainTitle  string
	Client     string
	Location   string
	Date       string // free-text label, not a calendar value
	Category   string
	Featured   bool
	Overview   string
	Stats      []ProjectStat
	Services   []string
	Images     []string
	ClientLogo string
	Views      int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProjectFilter narrows a project listing. Zero values mean "no filter".
type ProjectFilter struct {
	Featured *bool
	Category string
	Limit    int
}
