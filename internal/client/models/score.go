package models

// ScoreRecord is the outcome of one completed quiz. It is created at
// submission time and never mutated afterwards. ID is assigned by the server.
type ScoreRecord struct {
	ID         int    `json:"id,omitempty"`
	Total      int    `json:"total"`
	Correct    int    `json:"correct"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}
