package model

// Entry is a single player's current score
type Entry struct {
	Player string  `json:"player"`
	Score  float64 `json:"score"`
}

// Ranking is a ranked listing together with its top player
type Ranking struct {
	Entries []Entry `json:"ranked"`
	// TopPlayer is nil when the registry is empty
	TopPlayer *string `json:"top_player"`
}
