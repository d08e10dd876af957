// Package intra models the two intra API resources the CLI consumes and
// resolves the configured user through them.
package intra

// UserSummary is one element of the login-filtered /v2/users listing. Only
// the numeric id is consumed; it drives the profile lookup.
type UserSummary struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// UserProfile is the /v2/users/{id} resource, reduced to the fields the
// renderers print. The API returns a much larger object.
type UserProfile struct {
	ID              int64        `json:"id"`
	Displayname     string       `json:"displayname"`
	Login           string       `json:"login"`
	Email           string       `json:"email"`
	Wallet          int          `json:"wallet"`
	CorrectionPoint int          `json:"correction_point"`
	Titles          []Title      `json:"titles"`
	CursusUsers     []CursusUser `json:"cursus_users"`
}

// Title is an honorific the user has earned, e.g. "Philanthropist %login".
type Title struct {
	Name string `json:"name"`
}

// CursusUser is one cursus enrollment. Grade is absent until the first
// milestone; BlackholedAt is absent for cursus without a blackhole deadline.
type CursusUser struct {
	Cursus       Cursus  `json:"cursus"`
	Grade        *string `json:"grade"`
	BlackholedAt string  `json:"blackholed_at"`
}

// Cursus is the curriculum track of an enrollment.
type Cursus struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
