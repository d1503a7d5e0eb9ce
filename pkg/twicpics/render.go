package twicpics

import "strings"

// URL renders u. It fails if u has no source.
//
// The rendered form is the origin, then the transformations in call order,
// then format, then auth, then the source:
//
//	https://i.twic.pics/v1/focus=XxY/cover=1:1/format=webp-80/auth:<token>/<source>
func (u URL) URL() (string, error) {
	id, ok := u.resolve()
	if !ok {
		return "", usageError("url: cannot create url without a source")
	}

	var b strings.Builder
	b.WriteString(Origin)
	for _, entry := range u.manip.entries() {
		b.WriteString(entry)
		b.WriteByte('/')
	}
	if u.format != "" {
		b.WriteString("format=")
		b.WriteString(u.format)
		b.WriteByte('/')
	}
	if u.auth != "" {
		b.WriteString("auth:")
		b.WriteString(u.auth)
		b.WriteByte('/')
	}
	b.WriteString(id)
	return b.String(), nil
}
