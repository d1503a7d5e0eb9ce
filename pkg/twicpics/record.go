package twicpics

// Size is a record argument for the resize family of operations.
// A nil field is absent.
type Size struct {
	Width  any
	Height any
}

// Field implements [Record].
func (s Size) Field(name string) (any, bool) {
	switch name {
	case "width":
		return s.Width, true
	case "height":
		return s.Height, true
	}
	return nil, false
}

// Point is a record argument for [URL.Focus].
type Point struct {
	X any
	Y any
}

// Field implements [Record].
func (p Point) Field(name string) (any, bool) {
	switch name {
	case "x":
		return p.X, true
	case "y":
		return p.Y, true
	}
	return nil, false
}

// Area is a record argument for [URL.Crop]: a size and an optional origin.
type Area struct {
	Width  any
	Height any
	X      any
	Y      any
}

// Field implements [Record].
func (a Area) Field(name string) (any, bool) {
	switch name {
	case "width":
		return a.Width, true
	case "height":
		return a.Height, true
	case "x":
		return a.X, true
	case "y":
		return a.Y, true
	}
	return nil, false
}

// FormatSpec is a record argument for [URL.Format].
type FormatSpec struct {
	Type    any
	Quality any
}

// Field implements [Record].
func (f FormatSpec) Field(name string) (any, bool) {
	switch name {
	case "type":
		return f.Type, true
	case "quality":
		return f.Quality, true
	}
	return nil, false
}
