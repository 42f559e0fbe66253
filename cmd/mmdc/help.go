package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mmdc -i <input> -o <output> [flags]")
	fmt.Fprintln(w, "       mmdc doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Mermaid diagram to SVG or PNG with headless Chrome.")
	fmt.Fprintln(w, "The output extension selects the format: .svg for SVG, anything else PNG.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path|->      Diagram file, Markdown file, or - for stdin")
	fmt.Fprintln(w, "  -o, --output <path>       Output image file")
	fmt.Fprintln(w, "  -b, --block <n>           Mermaid block index in Markdown input (default 0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -w, --width <px>          Page width (default 1960)")
	fmt.Fprintln(w, "  -H, --height <px>         Page height, reduced to fit for PNG (default 2160)")
	fmt.Fprintln(w, "  -c, --cssFile <path>      Stylesheet override")
	fmt.Fprintln(w, "  -C, --configFile <path>   Mermaid JSON config override")
	fmt.Fprintln(w, "  -f, --font <path>         Font file override")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Render wait timeout (default 30s)")
	fmt.Fprintln(w, "      --poll-interval <dur> Render poll interval (default 100ms)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings:")
	fmt.Fprintln(w, "  -s, --settings <name>     Settings file name or path (YAML)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome/Chromium executable")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (containers, CI)")
}
