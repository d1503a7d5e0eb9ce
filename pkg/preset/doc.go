// Package preset loads named TwicPics "style" URLs from a TOML or YAML file.
//
// A style carries an output format and a list of transformations but no
// source. It is applied to content (an authenticated source, possibly with
// its own transformations) with [Set.Compose], which relies on
// twicpics.URL.SrcURL: the content keeps its auth and source, the style
// keeps its format, and the content's transformations run first.
//
// # File Format
//
//	[presets.thumbnail]
//	format = "webp"
//	quality = 80
//	steps = [
//	  { op = "focus", x = "50p", y = "50p" },
//	  { op = "cover", args = ["1:1"] },
//	  { op = "resize", width = 300 },
//	]
//
// The same document in YAML, read by [ParseYAML] and by [Load] for files
// ending in .yaml or .yml:
//
//	presets:
//	  thumbnail:
//	    format: webp
//	    quality: 80
//	    steps:
//	      - {op: focus, x: 50p, y: 50p}
//	      - {op: cover, args: ["1:1"]}
//	      - {op: resize, width: 300}
//
// Each step names an operation by method name ("resizeMax") or rendered key
// ("resize-max"). Arguments are either positional, under "args", or keyed by
// parameter name ("width", "height", "x", "y", "type", "quality"). A step
// cannot mix the two forms. An optional "auth" token may be set on a preset,
// though tokens usually belong to the content.
//
// Presets are built when the file is parsed, so an invalid step is reported
// by [Parse] or [Load] rather than at use.
package preset
