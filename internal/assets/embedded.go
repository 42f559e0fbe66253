package assets

import (
	"bytes"
	"embed"
	"io/fs"
)

//go:generate go run ../../cmd/mmdc-assets --dir static/vendor

//go:embed static
var static embed.FS

// Embedded asset paths.
const (
	htmlPath          = "static/index.html"
	stylePath         = "static/style.css"
	configPath        = "static/config.json"
	fontPath          = "static/vendor/" + FontFile
	renderLibraryPath = "static/vendor/" + RenderLibraryFile
)

// Bundle is the set of default resources. Each call to Defaults returns
// fresh slices that the caller may keep.
type Bundle struct {
	HTML          []byte
	Font          []byte
	Style         []byte
	Config        []byte
	RenderLibrary []byte
}

// Defaults returns the compiled-in resources. Font and RenderLibrary are
// empty when the vendor directory was not populated at build time.
func Defaults() Bundle {
	return Bundle{
		HTML:          read(htmlPath),
		Font:          read(fontPath),
		Style:         read(stylePath),
		Config:        read(configPath),
		RenderLibrary: read(renderLibraryPath),
	}
}

// Vendored reports whether the third-party files were embedded.
func Vendored() bool {
	return len(read(renderLibraryPath)) > 0 && len(read(fontPath)) > 0
}

// read returns a copy of an embedded file, or nil if it is absent.
func read(name string) []byte {
	data, err := fs.ReadFile(static, name)
	if err != nil {
		return nil
	}
	return bytes.Clone(data)
}
