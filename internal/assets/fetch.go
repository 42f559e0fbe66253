package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-retryablehttp"
)

// Vendored file names under static/vendor.
const (
	FontFile          = "font.woff2"
	RenderLibraryFile = "mermaid.min.js"
)

// MermaidVersion is the pinned Mermaid release.
const MermaidVersion = "10.6.1"

// Source pairs a download URL with its vendored file name.
type Source struct {
	URL  string
	File string
}

// Sources lists the third-party files embedded into the binary.
var Sources = []Source{
	{
		URL:  "https://github.com/adobe-fonts/source-han-sans/raw/release/Variable/WOFF2/OTF/Subset/SourceHanSansJP-VF.otf.woff2",
		File: FontFile,
	},
	{
		URL:  "https://cdn.jsdelivr.net/npm/mermaid@" + MermaidVersion + "/dist/mermaid.min.js",
		File: RenderLibraryFile,
	},
}

// maxAssetSize bounds a single download (32 MiB).
const maxAssetSize = 32 << 20

// Fetch downloads every source into dir, overwriting existing files.
// A nil client uses retryablehttp defaults with three retries.
func Fetch(ctx context.Context, dir string, sources []Source, client *retryablehttp.Client) error {
	if client == nil {
		client = retryablehttp.NewClient()
		client.RetryMax = 3
		client.Logger = nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}

	for _, src := range sources {
		if err := fetchOne(ctx, client, src, filepath.Join(dir, src.File)); err != nil {
			return err
		}
	}
	return nil
}

func fetchOne(ctx context.Context, client *retryablehttp.Client, src Source, dest string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFetch, src.URL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFetch, src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: status %d", ErrFetch, src.URL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize+1))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFetch, src.URL, err)
	}
	if len(data) > maxAssetSize {
		return fmt.Errorf("%w: %s: larger than %d bytes", ErrFetch, src.URL, maxAssetSize)
	}

	// #nosec G306 -- vendored assets are embedded, not secret
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}
	return nil
}
