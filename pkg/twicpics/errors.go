package twicpics

import "github.com/matzehuels/twicurl/pkg/errors"

// usageError reports a call the builder cannot accept.
func usageError(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidUsage, format, args...)
}

// arityError reports a wrong number of arguments for method.
func arityError(method string, lo, hi int) error {
	return usageError("method %s requires %d to %d arguments", method, lo, hi)
}
