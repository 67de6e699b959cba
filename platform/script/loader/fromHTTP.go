package loader

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPOptions configures a FromHTTP loader. Start from DefaultHTTPOptions.
type HTTPOptions struct {
	// Timeout bounds each request, including reading the body.
	Timeout time.Duration

	// TLSConfig is optional.
	TLSConfig *tls.Config

	// Username and Password set HTTP basic auth when Username is non-empty.
	Username string
	Password string

	// Headers are set on every request, e.g. "Authorization": "Bearer ...".
	Headers map[string]string
}

// DefaultHTTPOptions returns a 30 second timeout and no credentials.
func DefaultHTTPOptions() *HTTPOptions {
	return &HTTPOptions{
		Timeout: 30 * time.Second,
		Headers: make(map[string]string),
	}
}

// FromHTTP loads source with an HTTP GET on every GetReader.
type FromHTTP struct {
	url       string
	sourceURL *url.URL
	options   *HTTPOptions
	client    *http.Client
}

// NewFromHTTP creates a loader for an http or https URL with default options.
func NewFromHTTP(rawURL string) (*FromHTTP, error) {
	return NewFromHTTPWithOptions(rawURL, DefaultHTTPOptions())
}

// NewFromHTTPWithOptions creates a loader for an http or https URL.
func NewFromHTTPWithOptions(rawURL string, options *HTTPOptions) (*FromHTTP, error) {
	sourceURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse URL: %w", err)
	}
	if sourceURL.Scheme != "http" && sourceURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, rawURL)
	}
	if options == nil {
		options = DefaultHTTPOptions()
	}

	client := &http.Client{Timeout: options.Timeout}
	if options.TLSConfig != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = options.TLSConfig
		client.Transport = transport
	}

	return &FromHTTP{
		url:       rawURL,
		sourceURL: sourceURL,
		options:   options,
		client:    client,
	}, nil
}

// GetReader fetches the source. The caller closes the returned body.
func (l *FromHTTP) GetReader() (io.ReadCloser, error) {
	return l.GetReaderWithContext(context.Background())
}

// GetReaderWithContext fetches the source, aborting when ctx is done. Any
// status outside 2xx is reported as ErrScriptNotAvailable.
func (l *FromHTTP) GetReaderWithContext(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if l.options.Username != "" {
		req.SetBasicAuth(l.options.Username, l.options.Password)
	}
	for key, v := range l.options.Headers {
		req.Header.Set(key, v)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", "go-veval/http-loader")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d - %s", ErrScriptNotAvailable, resp.StatusCode, resp.Status)
	}
	return resp.Body, nil
}

func (l *FromHTTP) GetSourceURL() *url.URL {
	return l.sourceURL
}

func (l *FromHTTP) String() string {
	return fmt.Sprintf("loader.FromHTTP{URL: %s}", l.url)
}
