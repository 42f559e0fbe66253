// Package mmdc converts Mermaid diagrams to PNG or SVG images using
// headless Chrome, with no network access at run time.
//
// # Quick Start
//
//	conv := mmdc.NewConverter()
//	path, err := conv.Convert(ctx, mmdc.Job{
//	    Input:  "flow.mmd",
//	    Output: "flow.svg",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path) // canonical absolute path of flow.svg
//
// # Conversion Pipeline
//
//  1. BuildStore snapshots the diagram, font, stylesheet, Mermaid config
//     and the embedded Mermaid bundle. Override files that cannot be read
//     fall back to the compiled-in defaults; an unreadable diagram fails.
//  2. StartServer binds 127.0.0.1 on an OS-assigned port and serves the
//     snapshot to the browser over fixed routes (/, /font, /style,
//     /config, /diagram, /mermaid_js).
//  3. Export picks the format from the output extension (.svg, anything
//     else PNG) and runs the Renderer, which launches the browser, loads
//     the page and waits for Mermaid to finish drawing.
//  4. The image is written and its canonical path returned.
//
// # Render Completion
//
// Rendering happens asynchronously inside the page, so completion is
// detected by polling for DOM selectors: div#mermaid for SVG and
// div#mermaid > svg#svg for PNG. Both depend on Mermaid's output
// structure. Tune the wait with WithWaitTimeout and WithPollInterval.
//
// # Browser Requirements
//
// Rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package mmdc
