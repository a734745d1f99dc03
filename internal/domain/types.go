package domain

// Role values as stored on users and embedded in tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleGuest = "guest"
)
