package domain

import "errors"

const (
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exist")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingToken = errors.New("missing session token")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrUnknownSubject = errors.New("unknown token subject")

// User models an account in the marketplace. Deposit is only ever changed by
// adding an accepted coin or zeroing, so it always remains expressible as a
// sum of coin denominations.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Deposit      int    `json:"deposit"`
	Role         string `json:"role"`
}

// ValidRole reports whether role is one of the two accepted account roles.
func ValidRole(role string) bool {
	return role == RoleSeller || role == RoleBuyer
}
