package errors

import (
	"regexp"
	"unicode"
)

// presetNameRegex matches preset names: lowercase letters, digits, dashes and
// underscores, not starting with a separator.
var presetNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidatePresetName validates the name of a preset definition.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 64 characters
//   - Lowercase ASCII letters, digits, '-' and '_' only
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	const maxNameLength = 64
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPreset, "preset name too long (max %d characters)", maxNameLength)
	}

	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q", name)
	}

	return nil
}

// ValidateSource validates a media identifier given on the command line.
// The builder itself accepts any identifier; this only rejects values that
// are certainly typing mistakes.
func ValidateSource(src string) error {
	if src == "" {
		return New(ErrCodeInvalidInput, "source cannot be empty")
	}

	for _, r := range src {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "source contains invalid characters: %q", src)
		}
	}

	return nil
}
