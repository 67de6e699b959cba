package loader

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// InferLoader picks a loader for input:
//   - string: http(s) URLs load over HTTP, file URLs and absolute paths from
//     disk, and anything else is the expression itself
//   - []byte: FromBytes
//   - io.Reader: FromIoReader
//   - Loader: returned as is
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case Loader:
		return v, nil
	case string:
		return inferFromString(v)
	case []byte:
		return NewFromBytes(v)
	case io.Reader:
		return NewFromIoReader(v, "inferred")
	default:
		return nil, fmt.Errorf("unsupported input type: %T", input)
	}
}

func inferFromString(input string) (Loader, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty string input", ErrScriptNotAvailable)
	}

	// Expressions never contain "://", so only then is a scheme meaningful;
	// "a::b" would otherwise parse as scheme "a".
	if strings.Contains(input, "://") {
		if parsed, err := url.Parse(input); err == nil {
			switch parsed.Scheme {
			case "http", "https":
				return NewFromHTTP(input)
			case "file":
				return NewFromDisk(input)
			}
		}
	}

	if filepath.IsAbs(input) && !strings.ContainsAny(input, " \t\n") {
		return NewFromDisk(input)
	}
	return NewFromString(input)
}
