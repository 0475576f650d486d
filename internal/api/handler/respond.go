package handler

import (
	"errors"
	"net/http"
	"time"
)

// validationFields unwraps the validator error into the ordered error list.
func validationFields(err error) []fieldError {
	var ve *validationError
	if errors.As(err, &ve) {
		return ve.fields
	}
	return []fieldError{{Value: "", Msg: err.Error(), Param: ""}}
}

// sessionCookie builds the http-only session cookie carrying the token.
func sessionCookie(name, token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
	}
}

// expiredCookie overwrites the session cookie so the client drops it.
// Outstanding tokens stay valid until they expire; there is no server-side
// revocation for stateless sessions.
func expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
}
