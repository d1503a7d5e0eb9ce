package twicpics

// Contain fits the image inside the given width and height.
func (u URL) Contain(args ...any) (URL, error) {
	return u.resize("contain", "contain", args)
}

// ContainMax is like Contain but never enlarges the image.
func (u URL) ContainMax(args ...any) (URL, error) {
	return u.resize("containMax", "contain-max", args)
}

// ContainMin is like Contain but never shrinks the image.
func (u URL) ContainMin(args ...any) (URL, error) {
	return u.resize("containMin", "contain-min", args)
}

// Cover fills the given width and height, cropping what overflows.
func (u URL) Cover(args ...any) (URL, error) {
	return u.resize("cover", "cover", args)
}

// CoverMax is like Cover but never enlarges the image.
func (u URL) CoverMax(args ...any) (URL, error) {
	return u.resize("coverMax", "cover-max", args)
}

// CoverMin is like Cover but never shrinks the image.
func (u URL) CoverMin(args ...any) (URL, error) {
	return u.resize("coverMin", "cover-min", args)
}

// Max bounds the image size from above.
func (u URL) Max(args ...any) (URL, error) {
	return u.resize("max", "max", args)
}

// Min bounds the image size from below.
func (u URL) Min(args ...any) (URL, error) {
	return u.resize("min", "min", args)
}

// Resize scales the image to the given width and height.
func (u URL) Resize(args ...any) (URL, error) {
	return u.resize("resize", "resize", args)
}

// ResizeMax is like Resize but never enlarges the image.
func (u URL) ResizeMax(args ...any) (URL, error) {
	return u.resize("resizeMax", "resize-max", args)
}

// ResizeMin is like Resize but never shrinks the image.
func (u URL) ResizeMin(args ...any) (URL, error) {
	return u.resize("resizeMin", "resize-min", args)
}

// Step rounds the image size to a multiple of the given width and height.
func (u URL) Step(args ...any) (URL, error) {
	return u.resize("step", "step", args)
}

// resize appends key=size where size couples width and height.
// Accepts width, height positionally, as [Params] or as a [Size].
func (u URL) resize(method, key string, args []any) (URL, error) {
	v, err := normalize(method, args, "width", "height")
	if err != nil {
		return URL{}, err
	}
	size := couple(v[0], v[1])
	if size.absent() {
		return URL{}, usageError("%s: at least a width or a height is needed", method)
	}
	return u.transformation(key, size.text), nil
}

// Crop cuts a width x height area out of the image, optionally starting at
// the x, y coordinates. Arguments may also be given as [Params] or an [Area].
//
//	u.Crop(100, 50, 10, 20) // crop=100x50@10x20
//	u.Crop(100, nil, 10)    // crop=100@10
func (u URL) Crop(args ...any) (URL, error) {
	v, err := normalize("crop", args, "width", "height", "x", "y")
	if err != nil {
		return URL{}, err
	}
	size := couple(v[0], v[1])
	if size.absent() {
		return URL{}, usageError("crop: at least a width or a height is needed")
	}
	if coord := couple(v[2], v[3]); !coord.absent() {
		return u.transformation("crop", size.text+"@"+coord.text), nil
	}
	return u.transformation("crop", size.text), nil
}

// Focus sets the point of interest used by subsequent cropping operations.
// Arguments are x, y positionally, as [Params] or as a [Point].
func (u URL) Focus(args ...any) (URL, error) {
	v, err := normalize("focus", args, "x", "y")
	if err != nil {
		return URL{}, err
	}
	coord := couple(v[0], v[1])
	if coord.absent() {
		return URL{}, usageError("focus: at least a x-coord or a y-coord is needed")
	}
	return u.transformation("focus", coord.text), nil
}
