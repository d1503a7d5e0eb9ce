// Package pkg provides the libraries behind twicurl.
//
// # Overview
//
// The pkg directory is organized into the URL builder and its support:
//
//  1. [twicpics] - Immutable TwicPics URL descriptors and their serializer
//  2. [preset] - Named style URLs loaded from TOML files
//  3. [errors] - Coded errors shared by the library and the CLI
//  4. [buildinfo] - Version information injected at link time
//
// # Quick Start
//
//	import "github.com/matzehuels/twicurl/pkg/twicpics"
//
//	u, err := twicpics.NewChain().
//	    Focus("50p", "50p").
//	    Cover("1:1").
//	    Resize(500).
//	    Src("path/to/image.jpg").
//	    Result()
//	if err != nil {
//	    return err
//	}
//	s, _ := u.URL()
//	// https://i.twic.pics/v1/focus=50px50p/cover=1:1/resize=500/path/to/image.jpg
//
// [twicpics]: https://pkg.go.dev/github.com/matzehuels/twicurl/pkg/twicpics
// [preset]: https://pkg.go.dev/github.com/matzehuels/twicurl/pkg/preset
// [errors]: https://pkg.go.dev/github.com/matzehuels/twicurl/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/twicurl/pkg/buildinfo
package pkg
