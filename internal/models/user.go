package models

// User is the administrative account. The application is single-tenant: the
// lowest-id row is treated as the site owner everywhere.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"` // display name shown by the presentation layer
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}
