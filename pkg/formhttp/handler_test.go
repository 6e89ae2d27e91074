package formhttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/formkit/pkg/formhttp"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const testSchema = `
forms:
  signup:
    fields:
      - name: username
        rules:
          - type: is-required
          - type: length
            min: 3
            max: 8
      - name: initial
        rules:
          - type: has-min-max
            max: 1
  empty:
    fields: []
`

func newHandler(t *testing.T, opts ...formhttp.Option) http.Handler {
	t.Helper()
	doc, err := schema.NewYAMLParser().Parse(context.Background(), []byte(testSchema))
	require.NoError(t, err)
	reg, err := doc.Compile()
	require.NoError(t, err)
	return formhttp.Handler(reg, opts...)
}

func do(t *testing.T, h http.Handler, method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeValidation(t *testing.T, rec *httptest.ResponseRecorder) formhttp.ValidationResponse {
	t.Helper()
	var resp formhttp.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) formhttp.ErrorDetail {
	t.Helper()
	var resp formhttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestListForms(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/forms", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"empty", "signup"}, body["forms"])
}

func TestDescribeForm(t *testing.T) {
	h := newHandler(t)

	t.Run("returns declaration", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/forms/signup", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var spec schema.FormSpec
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
		require.Len(t, spec.Fields, 2)
		assert.Equal(t, "username", spec.Fields[0].Name)
		assert.Equal(t, "length", spec.Fields[0].Rules[1].Type)
	})

	t.Run("unknown form", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/forms/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "form_not_found", decodeError(t, rec).Code)
	})
}

func TestValidateForm(t *testing.T) {
	h := newHandler(t)

	t.Run("valid json submission", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/json",
			[]byte(`{"username":"john","initial":"j"}`))
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeValidation(t, rec)
		assert.Equal(t, "signup", resp.Form)
		assert.True(t, resp.Valid)
		assert.Equal(t, validator.Status{Valid: true}, resp.Fields["username"])
	})

	t.Run("invalid json submission reports first failure per field", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/json",
			[]byte(`{"username":"jo","initial":"jj"}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		resp := decodeValidation(t, rec)
		assert.False(t, resp.Valid)
		assert.Equal(t, validator.Status{Valid: false, Message: "Value is too short"}, resp.Fields["username"])
		assert.Equal(t, validator.Status{Valid: false, Message: "Max length is 1"}, resp.Fields["initial"])
	})

	t.Run("missing fields validate as empty", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/json", []byte(`{}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		resp := decodeValidation(t, rec)
		assert.Equal(t, "Required", resp.Fields["username"].Message)
		assert.True(t, resp.Fields["initial"].Valid)
	})

	t.Run("urlencoded submission", func(t *testing.T) {
		body := url.Values{"username": {"johnny"}, "initial": {"j"}, "extra": {"ignored"}}.Encode()
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/x-www-form-urlencoded", []byte(body))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeValidation(t, rec).Valid)
	})

	t.Run("multipart submission", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("username", "averylongname"))
		require.NoError(t, mw.WriteField("initial", "a"))
		require.NoError(t, mw.Close())

		rec := do(t, h, http.MethodPost, "/forms/signup/validate", mw.FormDataContentType(), buf.Bytes())
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Value is too long", decodeValidation(t, rec).Fields["username"].Message)
	})

	t.Run("validates values as received", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/json",
			[]byte(`{"username":"john","initial":"e\u0301"}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Max length is 1", decodeValidation(t, rec).Fields["initial"].Message)
	})

	t.Run("form without fields is valid", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/empty/validate", "application/json", []byte(`{}`))
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeValidation(t, rec)
		assert.True(t, resp.Valid)
		assert.Empty(t, resp.Fields)
	})

	t.Run("unknown form", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/missing/validate", "application/json", []byte(`{}`))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-string json value", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/json", []byte(`{"username":42}`))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		detail := decodeError(t, rec)
		assert.Equal(t, "invalid_body", detail.Code)
		assert.Contains(t, detail.Message, "username")
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/json", []byte(`{"username":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing content type", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "", []byte(`{}`))
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, "unsupported_media_type", decodeError(t, rec).Code)
	})

	t.Run("unsupported content type", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "text/plain", []byte("username=john"))
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestWithNormalization(t *testing.T) {
	h := newHandler(t, formhttp.WithNormalization(norm.NFC))

	rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/json",
		[]byte(`{"username":"john","initial":"e\u0301"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeValidation(t, rec).Fields["initial"].Valid)
}

func TestWithMaxBodySize(t *testing.T) {
	t.Run("rejects oversized json", func(t *testing.T) {
		h := newHandler(t, formhttp.WithMaxBodySize(16))
		body := `{"username":"` + strings.Repeat("a", 32) + `"}`
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/json", []byte(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects oversized urlencoded body", func(t *testing.T) {
		h := newHandler(t, formhttp.WithMaxBodySize(16))
		body := url.Values{"username": {strings.Repeat("a", 32)}}.Encode()
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", "application/x-www-form-urlencoded", []byte(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects oversized multipart body", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("username", strings.Repeat("a", 256)))
		require.NoError(t, mw.Close())

		h := newHandler(t, formhttp.WithMaxBodySize(64))
		rec := do(t, h, http.MethodPost, "/forms/signup/validate", mw.FormDataContentType(), buf.Bytes())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_body", decodeError(t, rec).Code)
	})

	t.Run("panics on non-positive size", func(t *testing.T) {
		assert.Panics(t, func() { formhttp.WithMaxBodySize(0) })
	})
}
