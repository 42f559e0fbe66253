// Package config loads optional render settings from a YAML file.
//
// A settings file supplies defaults that command-line flags override:
//
//	width: 1200
//	height: 900
//	timeout: 45s
//	pollInterval: 250ms
//	css: ./diagram.css
//	mermaidConfig: ./mermaid.json
//	font: ./NotoSans.woff2
//	browser:
//	  bin: /usr/bin/chromium
//	  noSandbox: true
//
// Settings are read once per run and never written back.
package config
