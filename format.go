package mmdc

import "github.com/alnah/go-mmdc/internal/fileutil"

// Format is the output image encoding.
type Format int

// Supported formats. PNG is the zero value and the fallback for every
// extension other than .svg.
const (
	FormatPNG Format = iota
	FormatSVG
)

// String returns the lowercase format name.
func (f Format) String() string {
	if f == FormatSVG {
		return "svg"
	}
	return "png"
}

// FormatOf picks the format from the output path's extension: ".svg" in
// any case selects SVG, anything else (including no extension) PNG.
func FormatOf(path string) Format {
	if fileutil.HasExtension(path, ".svg") {
		return FormatSVG
	}
	return FormatPNG
}
