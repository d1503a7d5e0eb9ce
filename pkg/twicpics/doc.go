// Package twicpics builds TwicPics transformation URLs.
//
// # Overview
//
// A [URL] accumulates the state of a transformation pipeline: an ordered list
// of transformations (resize, crop, focus, ...), an optional output format,
// an optional authentication token and a source. Rendering produces a single
// string rooted at [Origin]:
//
//	https://i.twic.pics/v1/cover=1:1/resize=500/format=png/auth:<token>/<source>
//
// Transformations render in call order. Format and auth always render at
// their fixed position, whatever the order of the calls that set them.
//
// # Immutability
//
// A URL is a small immutable value. Every method returns a new URL and leaves
// its receiver untouched, so a URL can be used as a shared base and forked
// into many derived pipelines, including from several goroutines:
//
//	base, _ := twicpics.New().Focus("50p", "50p")
//	square, _ := base.Cover("1:1")
//	wide, _ := base.Cover("16:9")
//
// Transformation entries are kept in a persistent list: forks share the
// entries of their common ancestor instead of copying them.
//
// # Arguments
//
// Size and position operations accept the same values in three shapes:
//
//	u.Resize(500, 300)                              // positional
//	u.Resize(twicpics.Params{"width": 500})         // keyed mapping
//	u.Resize(twicpics.Size{Width: 500, Height: 300}) // field-keyed record
//
// nil stands for "no value", which is not the same as an empty string.
// Missing keys and fields are treated as nil. A pair of values is encoded
// as "WxH", "W" or "-xH" depending on which side is present.
//
// # Composition
//
// [URL.SrcURL] uses another URL as the source. This lets a "style" URL
// (format and transformations) be applied to a "content" URL (auth and
// source): the content's auth and source win, the style's format wins,
// and the content's transformations run first.
//
// # Errors
//
// Invalid calls return an error carrying errors.ErrCodeInvalidUsage from
// the pkg/errors package. Errors are raised by the offending call, never
// deferred to rendering, with the single exception of rendering a URL that
// has no source. [Chain] keeps the first error of a fluent call sequence.
package twicpics
