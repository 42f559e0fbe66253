package mmdc

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-mmdc/internal/fileutil"
)

// Export renders the diagram served on port in the format chosen by
// outputPath's extension, writes it to outputPath (replacing any existing
// file) and returns the file's canonical absolute path. Nothing is written
// when rendering fails.
func Export(ctx context.Context, r ImageRenderer, outputPath string, width, height, port int) (string, error) {
	data, err := r.Render(ctx, RenderRequest{
		Width:  width,
		Height: height,
		Format: FormatOf(outputPath),
		Port:   port,
	})
	if err != nil {
		return "", err
	}

	// #nosec G306 -- output images are meant to be world-readable
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	abs, err := fileutil.Canonicalize(outputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCanonicalPath, err)
	}
	return abs, nil
}
