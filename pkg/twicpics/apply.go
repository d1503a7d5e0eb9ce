package twicpics

// Operation is a builder operation that can be looked up by name.
type Operation func(u URL, args ...any) (URL, error)

// operationNames lists the canonical name of every operation reachable
// through [URL.Apply], in alphabetical order.
var operationNames = [...]string{
	"auth", "contain", "containMax", "containMin",
	"cover", "coverMax", "coverMin",
	"crop", "focus", "format", "jpeg",
	"max", "min", "png",
	"resize", "resizeMax", "resizeMin",
	"step", "webp",
}

// Operations returns the canonical operation names accepted by [URL.Apply].
func Operations() []string {
	names := make([]string, len(operationNames))
	copy(names, operationNames[:])
	return names
}

// LookupOperation finds an operation by its method name ("resizeMax") or by
// the key it renders ("resize-max").
func LookupOperation(name string) (Operation, bool) {
	switch name {
	case "auth":
		return applyAuth, true
	case "contain":
		return URL.Contain, true
	case "containMax", "contain-max":
		return URL.ContainMax, true
	case "containMin", "contain-min":
		return URL.ContainMin, true
	case "cover":
		return URL.Cover, true
	case "coverMax", "cover-max":
		return URL.CoverMax, true
	case "coverMin", "cover-min":
		return URL.CoverMin, true
	case "crop":
		return URL.Crop, true
	case "focus":
		return URL.Focus, true
	case "format":
		return URL.Format, true
	case "jpeg":
		return URL.JPEG, true
	case "max":
		return URL.Max, true
	case "min":
		return URL.Min, true
	case "png":
		return applyPNG, true
	case "resize":
		return URL.Resize, true
	case "resizeMax", "resize-max":
		return URL.ResizeMax, true
	case "resizeMin", "resize-min":
		return URL.ResizeMin, true
	case "step":
		return URL.Step, true
	case "webp":
		return URL.WebP, true
	}
	return nil, false
}

func applyPNG(u URL, args ...any) (URL, error) {
	if len(args) > 0 {
		return URL{}, arityError("png", 0, 0)
	}
	return u.PNG()
}

func applyAuth(u URL, args ...any) (URL, error) {
	if len(args) != 1 {
		return URL{}, arityError("auth", 1, 1)
	}
	token, ok := args[0].(string)
	if !ok {
		return URL{}, usageError("auth: token must be a string, got %T", args[0])
	}
	return u.Auth(token)
}

// Apply runs the operation called op with args.
func (u URL) Apply(op string, args ...any) (URL, error) {
	fn, ok := LookupOperation(op)
	if !ok {
		return URL{}, usageError("apply: unknown operation %q", op)
	}
	return fn(u, args...)
}
