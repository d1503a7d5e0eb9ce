package twicpics

// Output formats understood by the CDN.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// formatCapability reports whether name is a known format and whether that
// format accepts a quality specifier.
func formatCapability(name string) (quality, known bool) {
	switch name {
	case FormatJPEG, FormatWebP:
		return true, true
	case FormatPNG:
		return false, true
	}
	return false, false
}

// Formats returns the supported output format names.
func Formats() []string {
	return []string{FormatJPEG, FormatPNG, FormatWebP}
}

// Format sets the output format, with an optional quality for formats that
// support one. Arguments are type, quality positionally, as [Params] or as a
// [FormatSpec].
//
//	u.Format("jpeg", 80) // format=jpeg-80
//	u.Format("png")      // format=png
func (u URL) Format(args ...any) (URL, error) {
	v, err := normalize("format", args, "type", "quality")
	if err != nil {
		return URL{}, err
	}
	typ, quality := v[0], v[1]
	if typ.absent() {
		return URL{}, usageError("format: format expected")
	}
	withQuality, known := formatCapability(typ.text)
	if !known {
		return URL{}, usageError("format: unknown format %q", typ.text)
	}
	if quality.absent() {
		u.format = typ.text
		return u, nil
	}
	if !withQuality {
		return URL{}, usageError("format: format %q does not support quality specifier", typ.text)
	}
	u.format = typ.text + "-" + quality.text
	return u, nil
}

// JPEG sets the jpeg output format with an optional quality.
func (u URL) JPEG(quality ...any) (URL, error) {
	return u.fixedFormat(FormatJPEG, quality)
}

// PNG sets the png output format.
func (u URL) PNG() (URL, error) {
	return u.Format(FormatPNG)
}

// WebP sets the webp output format with an optional quality.
func (u URL) WebP(quality ...any) (URL, error) {
	return u.fixedFormat(FormatWebP, quality)
}

func (u URL) fixedFormat(typ string, quality []any) (URL, error) {
	switch len(quality) {
	case 0:
		return u.Format(typ)
	case 1:
		return u.Format(typ, quality[0])
	}
	return URL{}, arityError(typ, 0, 1)
}
