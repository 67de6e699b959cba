package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-veval/internal/helpers"
)

// previewRunes bounds how much of an expression String shows.
const previewRunes = 32

// FromString loads an expression held in memory, such as one typed on the
// command line or built by the caller.
type FromString struct {
	expr      string
	sourceURL *url.URL
}

// NewFromString creates a loader for expr. Windows line endings become \n and
// surrounding whitespace is trimmed; what is left must be non-empty. The
// source URL is keyed by a checksum of the normalized text, so the same
// expression always gets the same URL.
func NewFromString(expr string) (*FromString, error) {
	expr = strings.TrimSpace(strings.ReplaceAll(expr, "\r\n", "\n"))
	if expr == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrScriptNotAvailable)
	}

	u, err := url.Parse("string://inline/" + helpers.ShortChecksum(expr, 8))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}
	return &FromString{expr: expr, sourceURL: u}, nil
}

// String shows the start of the expression, which is what log lines about a
// failing unit need.
func (l *FromString) String() string {
	preview := l.expr
	if r := []rune(preview); len(r) > previewRunes {
		preview = string(r[:previewRunes]) + "..."
	}
	return fmt.Sprintf("loader.FromString{Expr: %q}", preview)
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.expr)), nil
}

func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
