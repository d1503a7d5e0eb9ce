package twicpics

import "regexp"

// authPattern matches version 4 UUIDs, the shape of TwicPics tokens.
var authPattern = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89aAbB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`,
)

// Auth sets the authentication token. The token must be a version 4 UUID.
func (u URL) Auth(token string) (URL, error) {
	if !authPattern.MatchString(token) {
		return URL{}, usageError("auth: token %q is ill-formed", token)
	}
	u.auth = token
	return u, nil
}
