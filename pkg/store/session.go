package store

// Session represents the authenticated identity held for the lifetime of an
// app process. It exists only while authenticated; sign-out destroys it.
type Session struct {
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	State       string `json:"state"`
}

const (
	// StateAuthenticating covers the window between credential validation and
	// session resumption, during which navigation decisions must be deferred.
	StateAuthenticating = "AUTHENTICATING"
	StateAuthenticated  = "AUTHENTICATED"
)
