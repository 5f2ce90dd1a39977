package domain

// User is the only record managed by the service. Password always holds a
// bcrypt hash once the user has been stored.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
