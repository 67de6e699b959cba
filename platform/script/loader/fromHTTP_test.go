package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTTP(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "go-veval/http-loader", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte(exprContent))
		}))
		defer server.Close()

		l, err := NewFromHTTP(server.URL + "/rule.expr")
		require.NoError(t, err)
		assert.Equal(t, exprContent, readAll(t, l))
		assert.Equal(t, server.URL+"/rule.expr", l.GetSourceURL().String())
		assert.Contains(t, l.String(), "rule.expr")
	})

	t.Run("credentials and headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != "user" || pass != "pass" || r.Header.Get("X-Tenant") != "acme" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(exprContent))
		}))
		defer server.Close()

		opts := DefaultHTTPOptions()
		opts.Username = "user"
		opts.Password = "pass"
		opts.Headers["X-Tenant"] = "acme"

		l, err := NewFromHTTPWithOptions(server.URL, opts)
		require.NoError(t, err)
		assert.Equal(t, exprContent, readAll(t, l))

		plain, err := NewFromHTTP(server.URL)
		require.NoError(t, err)
		_, err = plain.GetReader()
		require.ErrorIs(t, err, ErrScriptNotAvailable)
	})

	t.Run("non 2xx", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		l, err := NewFromHTTP(server.URL)
		require.NoError(t, err)
		_, err = l.GetReader()
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
		}))
		defer server.Close()

		opts := DefaultHTTPOptions()
		opts.Timeout = 50 * time.Millisecond
		l, err := NewFromHTTPWithOptions(server.URL, opts)
		require.NoError(t, err)
		_, err = l.GetReader()
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(exprContent))
		}))
		defer server.Close()

		l, err := NewFromHTTP(server.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err = l.GetReaderWithContext(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("tls", func(t *testing.T) {
		server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(exprContent))
		}))
		defer server.Close()

		opts := DefaultHTTPOptions()
		opts.TLSConfig = server.Client().Transport.(*http.Transport).TLSClientConfig
		l, err := NewFromHTTPWithOptions(server.URL, opts)
		require.NoError(t, err)
		assert.Equal(t, exprContent, readAll(t, l))
	})

	t.Run("bad urls", func(t *testing.T) {
		_, err := NewFromHTTP("file:///rule.expr")
		require.ErrorIs(t, err, ErrSchemeUnsupported)
		_, err = NewFromHTTP("ftp://example.com/rule.expr")
		require.ErrorIs(t, err, ErrSchemeUnsupported)
		_, err = NewFromHTTP("http://[::1")
		require.Error(t, err)
	})
}
