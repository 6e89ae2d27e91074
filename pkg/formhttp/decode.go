package formhttp

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultMaxBodySize limits JSON and urlencoded request bodies (1MB).
	DefaultMaxBodySize = 1 << 20
	// DefaultMaxMemory is the in-memory limit for multipart forms (10MB).
	DefaultMaxMemory = 10 << 20
)

// decodeValues reads submitted field values from the request body. Only the
// first value of repeated keys is used. Bodies larger than maxBody are
// rejected for every media type.
func decodeValues(w http.ResponseWriter, r *http.Request, maxBody int64) (map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, ErrMissingContentType
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return firstValues(r.PostForm), nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return firstValues(r.MultipartForm.Value), nil

	case "application/json":
		return decodeJSON(r.Body, maxBody)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

// normalize rewrites every value into the Unicode normalization form f.
func normalize(values map[string]string, f norm.Form) {
	for k, v := range values {
		values[k] = f.String(v)
	}
}

func decodeJSON(r io.Reader, maxBody int64) (map[string]string, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > maxBody {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, maxBody)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, fmt.Errorf("%w: field %q must be a string", ErrFailedToParseJSON, k)
		}
		values[k] = s
	}
	return values, nil
}

func firstValues(src map[string][]string) map[string]string {
	values := make(map[string]string, len(src))
	for k, v := range src {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}
	return values
}
