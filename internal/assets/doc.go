// Package assets provides the compiled-in defaults served to the browser.
//
// # Contents
//
//	static/
//	├── index.html          # page shell: loads every resource, renders into div#mermaid
//	├── style.css           # default stylesheet
//	├── config.json         # default Mermaid configuration
//	└── vendor/
//	    ├── font.woff2      # Source Han Sans JP (variable, subset)
//	    └── mermaid.min.js  # Mermaid bundle
//
// The vendor files are third-party downloads and are not kept in version
// control. Populate them before building:
//
//	go generate ./internal/assets
//
// A binary built without them still starts, but Defaults reports an empty
// RenderLibrary and the converter refuses to run.
package assets
