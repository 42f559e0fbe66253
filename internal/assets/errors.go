package assets

import "errors"

// Sentinel errors for asset vendoring.
var (
	// ErrFetch indicates a vendored asset could not be downloaded.
	ErrFetch = errors.New("failed to fetch asset")

	// ErrAssetWrite indicates a downloaded asset could not be stored.
	ErrAssetWrite = errors.New("failed to write asset")
)
