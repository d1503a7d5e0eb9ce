package twicpics

// Chain strings builder calls together on one line. The first failing call
// is remembered and every later call is skipped, so a sequence needs a
// single error check at the end:
//
//	s, err := twicpics.NewChain().Format("png").Cover("1:1").Src("cat.jpg").URL()
//
// Like [URL], a Chain is an immutable value.
type Chain struct {
	url URL
	err error
}

// NewChain returns a Chain starting from an empty URL.
func NewChain() Chain {
	return Chain{}
}

// Chain returns a Chain starting from u.
func (u URL) Chain() Chain {
	return Chain{url: u}
}

// Result returns the URL built so far, or the first error.
func (c Chain) Result() (URL, error) {
	if c.err != nil {
		return URL{}, c.err
	}
	return c.url, nil
}

// Err returns the first error of the chain, if any.
func (c Chain) Err() error {
	return c.err
}

// URL renders the chain, or returns its first error.
func (c Chain) URL() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.url.URL()
}

func (c Chain) then(op func(URL) (URL, error)) Chain {
	if c.err != nil {
		return c
	}
	u, err := op(c.url)
	if err != nil {
		return Chain{url: c.url, err: err}
	}
	return Chain{url: u}
}

func (c Chain) call(op Operation, args []any) Chain {
	return c.then(func(u URL) (URL, error) { return op(u, args...) })
}

// Src sets the source. See [URL.Src].
func (c Chain) Src(id string) Chain {
	if c.err == nil {
		c.url = c.url.Src(id)
	}
	return c
}

// SrcURL merges other as the source. See [URL.SrcURL].
func (c Chain) SrcURL(other URL) Chain {
	if c.err == nil {
		c.url = c.url.SrcURL(other)
	}
	return c
}

// SrcChain merges the result of other as the source; an error in other
// becomes the error of the returned chain.
func (c Chain) SrcChain(other Chain) Chain {
	if c.err == nil && other.err != nil {
		return Chain{url: c.url, err: other.err}
	}
	return c.SrcURL(other.url)
}

// Auth sets the authentication token. See [URL.Auth].
func (c Chain) Auth(token string) Chain {
	return c.then(func(u URL) (URL, error) { return u.Auth(token) })
}

// Apply runs a named operation. See [URL.Apply].
func (c Chain) Apply(op string, args ...any) Chain {
	return c.then(func(u URL) (URL, error) { return u.Apply(op, args...) })
}

// Format applies [URL.Format].
func (c Chain) Format(args ...any) Chain { return c.call(URL.Format, args) }

// JPEG applies [URL.JPEG].
func (c Chain) JPEG(quality ...any) Chain { return c.call(URL.JPEG, quality) }

// PNG applies [URL.PNG].
func (c Chain) PNG() Chain { return c.then(URL.PNG) }

// WebP applies [URL.WebP].
func (c Chain) WebP(quality ...any) Chain { return c.call(URL.WebP, quality) }

// Contain applies [URL.Contain].
func (c Chain) Contain(args ...any) Chain { return c.call(URL.Contain, args) }

// ContainMax applies [URL.ContainMax].
func (c Chain) ContainMax(args ...any) Chain { return c.call(URL.ContainMax, args) }

// ContainMin applies [URL.ContainMin].
func (c Chain) ContainMin(args ...any) Chain { return c.call(URL.ContainMin, args) }

// Cover applies [URL.Cover].
func (c Chain) Cover(args ...any) Chain { return c.call(URL.Cover, args) }

// CoverMax applies [URL.CoverMax].
func (c Chain) CoverMax(args ...any) Chain { return c.call(URL.CoverMax, args) }

// CoverMin applies [URL.CoverMin].
func (c Chain) CoverMin(args ...any) Chain { return c.call(URL.CoverMin, args) }

// Crop applies [URL.Crop].
func (c Chain) Crop(args ...any) Chain { return c.call(URL.Crop, args) }

// Focus applies [URL.Focus].
func (c Chain) Focus(args ...any) Chain { return c.call(URL.Focus, args) }

// Max applies [URL.Max].
func (c Chain) Max(args ...any) Chain { return c.call(URL.Max, args) }

// Min applies [URL.Min].
func (c Chain) Min(args ...any) Chain { return c.call(URL.Min, args) }

// Resize applies [URL.Resize].
func (c Chain) Resize(args ...any) Chain { return c.call(URL.Resize, args) }

// ResizeMax applies [URL.ResizeMax].
func (c Chain) ResizeMax(args ...any) Chain { return c.call(URL.ResizeMax, args) }

// ResizeMin applies [URL.ResizeMin].
func (c Chain) ResizeMin(args ...any) Chain { return c.call(URL.ResizeMin, args) }

// Step applies [URL.Step].
func (c Chain) Step(args ...any) Chain { return c.call(URL.Step, args) }
