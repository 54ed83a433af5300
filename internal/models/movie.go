package models

// Movie is a single watchlist entry. Year is stored as text, matching the
// form field it comes from.
type Movie struct {
	ID    int    `json:"id"`
	Title string `json:"title"` // non-empty, at most 60 characters
	Year  string `json:"year"`  // non-empty, at most 4 characters
}
