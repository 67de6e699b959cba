// Package loader reads expression source from strings, files, readers and URLs.
package loader

import (
	"errors"
	"io"
	"net/url"
)

var (
	ErrSchemeUnsupported  = errors.New("unsupported scheme")
	ErrScriptNotAvailable = errors.New("script not available")
)

// Loader provides expression source. GetReader may be called more than once
// and each call returns the full source from the start.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
