// Command mmdc-assets downloads the font and Mermaid bundle that mmdc
// embeds. It runs through go generate in internal/assets.
package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-retryablehttp"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mmdc/internal/assets"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, assets.Sources))
}

func run(ctx context.Context, args []string, stderr io.Writer, sources []assets.Source) int {
	fs := flag.NewFlagSet("mmdc-assets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", "static/vendor", "destination directory")
	retries := fs.Int("retries", 3, "retries per download")
	timeout := fs.Duration("timeout", 2*time.Minute, "overall download timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "mmdc-assets"})

	client := retryablehttp.NewClient()
	client.RetryMax = *retries
	client.Logger = nil
	client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		logger.Info("downloading", "url", req.URL.String(), "attempt", attempt+1)
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := assets.Fetch(ctx, *dir, sources, client); err != nil {
		logger.Error("vendoring failed", "err", err)
		return 1
	}
	logger.Info("assets vendored", "dir", *dir, "mermaid", assets.MermaidVersion)
	return 0
}
