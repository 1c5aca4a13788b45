package model

// Scope carries the authenticated caller identity through usecases.
type Scope struct {
	UserID   string
	Username string
}
