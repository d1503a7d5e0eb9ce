package twicpics

// Origin is the root of every rendered URL.
const Origin = "https://i.twic.pics/v1/"

// URL is an immutable description of a TwicPics transformation pipeline.
//
// The zero value is an empty builder with no transformation, format, auth
// or source. Methods never modify their receiver; each returns a new URL.
type URL struct {
	auth   string
	format string
	manip  *manipulation
	src    source
}

// New returns an empty URL.
func New() URL {
	return URL{}
}

// Src returns a copy of u whose source is the media identifier id.
func (u URL) Src(id string) URL {
	u.src = path(id)
	return u
}

// SrcURL returns a copy of u that uses other as its source.
//
// The two URLs are merged field by field:
//   - auth: other's token if it has one, otherwise u's
//   - format: u's format if it has one, otherwise other's
//   - transformations: other's entries followed by u's
//   - source: other's source if it has one, otherwise u's
//
// Auth and source follow the content (other) while format follows the style
// (u), so a preset can be applied to any authenticated source.
func (u URL) SrcURL(other URL) URL {
	if other.auth != "" {
		u.auth = other.auth
	}
	if u.format == "" {
		u.format = other.format
	}
	u.manip = u.manip.graft(other.manip)
	if other.src != nil {
		u.src = ref{url: &other}
	}
	return u
}

// Transformations returns the transformation entries of u in call order,
// each in its rendered "key=value" form.
func (u URL) Transformations() []string {
	return u.manip.entries()
}

// HasSource reports whether u resolves to a media identifier.
func (u URL) HasSource() bool {
	_, ok := u.resolve()
	return ok
}

func (u URL) resolve() (string, bool) {
	if u.src == nil {
		return "", false
	}
	return u.src.resolve()
}

// transformation returns a copy of u with one more "key=val" entry.
func (u URL) transformation(key, val string) URL {
	u.manip = u.manip.push(key + "=" + val)
	return u
}

// manipulation is a node of a persistent list of transformation entries,
// linked from the newest entry back to the first. Nodes are never modified
// after creation, so every URL derived from a node shares it.
type manipulation struct {
	entry string
	prev  *manipulation
	size  int
}

func (m *manipulation) push(entry string) *manipulation {
	return &manipulation{entry: entry, prev: m, size: m.len() + 1}
}

func (m *manipulation) len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// entries returns the entries in insertion order.
func (m *manipulation) entries() []string {
	out := make([]string, m.len())
	for n := m; n != nil; n = n.prev {
		out[n.size-1] = n.entry
	}
	return out
}

// graft returns a list holding the entries of base followed by those of m.
// base is shared, only the entries of m are re-linked.
func (m *manipulation) graft(base *manipulation) *manipulation {
	if base == nil {
		return m
	}
	for _, entry := range m.entries() {
		base = base.push(entry)
	}
	return base
}

// source yields the media identifier of a URL.
type source interface {
	resolve() (string, bool)
}

// path is a media identifier given directly.
type path string

func (p path) resolve() (string, bool) {
	return string(p), true
}

// ref defers to the source of another URL.
type ref struct {
	url *URL
}

func (r ref) resolve() (string, bool) {
	return r.url.resolve()
}
