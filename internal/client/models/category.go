package models

// Category is a quiz topic. Categories are unique by ID and immutable once fetched.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
