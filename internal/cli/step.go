package cli

import (
	"strings"

	"github.com/matzehuels/twicurl/pkg/errors"
	"github.com/matzehuels/twicurl/pkg/twicpics"
)

// parseStep parses a command-line step into an operation and its arguments.
//
// Steps have the form "op" or "op:args". Args are either positional,
// separated by commas, where an empty position is absent:
//
//	resize:500        -> Resize("500")
//	crop:100,,10,20   -> Crop("100", nil, "10", "20")
//
// or all named, which passes them as keyed parameters:
//
//	crop:height=300,x=10  -> Crop(Params{"height": "300", "x": "10"})
func parseStep(s string) (string, []any, error) {
	op, rest, hasArgs := strings.Cut(s, ":")
	if op == "" {
		return "", nil, errors.New(errors.ErrCodeInvalidInput, "step %q: missing operation", s)
	}
	if !hasArgs {
		return op, nil, nil
	}

	parts := strings.Split(rest, ",")
	named := 0
	for _, part := range parts {
		if strings.Contains(part, "=") {
			named++
		}
	}

	switch named {
	case 0:
		args := make([]any, len(parts))
		for i, part := range parts {
			if part != "" {
				args[i] = part
			}
		}
		return op, args, nil
	case len(parts):
		params := make(twicpics.Params, len(parts))
		for _, part := range parts {
			key, val, _ := strings.Cut(part, "=")
			if key == "" {
				return "", nil, errors.New(errors.ErrCodeInvalidInput, "step %q: empty parameter name", s)
			}
			if val != "" {
				params[key] = val
			}
		}
		return op, []any{params}, nil
	}
	return "", nil, errors.New(errors.ErrCodeInvalidInput, "step %q: cannot mix positional and named arguments", s)
}
