package models

// Department represents a department of the company
type Department struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Software Engineering"`
}
