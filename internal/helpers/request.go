package helpers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
)

// RequestToMap converts r into nested maps of values an expression can read.
// Header and query parameter names go through BindingName, so a header
// "Content-Type" is found at headers::content_type. Each header and query
// entry is a list of strings. The body is read in full and restored on r.
func RequestToMap(r *http.Request) (map[string]any, error) {
	if r == nil {
		return nil, errors.New("request is nil")
	}

	out := map[string]any{
		"method":         r.Method,
		"proto":          r.Proto,
		"host":           r.Host,
		"remote_addr":    r.RemoteAddr,
		"content_length": r.ContentLength,
		"body":           "",
		"url":            "",
		"scheme":         "",
		"path":           "/",
	}

	headers := make(map[string]any, len(r.Header))
	for k, v := range r.Header {
		headers[BindingName(k)] = v
	}
	out["headers"] = headers

	query := make(map[string]any)
	if r.URL != nil {
		out["url"] = r.URL.String()
		out["scheme"] = r.URL.Scheme
		if r.URL.Path != "" {
			out["path"] = r.URL.Path
		}
		for k, v := range r.URL.Query() {
			query[BindingName(k)] = v
		}
	}
	out["query"] = query

	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		out["body"] = string(body)
	}

	return out, nil
}
