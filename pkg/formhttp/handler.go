package formhttp

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Option configures the handler.
type Option func(*handler)

// WithLogger sets the request logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBodySize limits request bodies of every accepted media type.
// Panics on a non-positive size.
func WithMaxBodySize(n int64) Option {
	if n <= 0 {
		panic("WithMaxBodySize: size must be > 0")
	}
	return func(h *handler) { h.maxBody = n }
}

// WithNormalization rewrites submitted values into the Unicode normalization
// form f (for example norm.NFC) before validation. Without it values are
// validated exactly as received, so "e\u0301" counts as two units.
func WithNormalization(f norm.Form) Option {
	return func(h *handler) { h.norm = &f }
}

type handler struct {
	reg     *schema.Registry
	log     *slog.Logger
	maxBody int64
	norm    *norm.Form
}

// Handler exposes the forms of reg over HTTP:
//
//	GET  /forms                  list form names
//	GET  /forms/{form}           field and rule declarations
//	POST /forms/{form}/validate  validate submitted values
func Handler(reg *schema.Registry, opts ...Option) http.Handler {
	h := &handler{
		reg:     reg,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("formhttp"))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Route("/forms", func(r chi.Router) {
		r.Get("/", h.listForms)
		r.Get("/{form}", h.describeForm)
		r.Post("/{form}/validate", h.validateForm)
	})
	return r
}

func (h *handler) listForms(w http.ResponseWriter, r *http.Request) {
	h.write(r, writeJSON(w, http.StatusOK, map[string][]string{"forms": h.reg.Names()}))
}

func (h *handler) describeForm(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "form")
	spec, ok := h.reg.Spec(name)
	if !ok {
		h.write(r, writeError(w, http.StatusNotFound, "form_not_found", "form "+name+" is not defined"))
		return
	}
	h.write(r, writeJSON(w, http.StatusOK, spec))
}

func (h *handler) validateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "form")

	f, err := h.reg.NewForm(name, form.WithLogger(h.log))
	if err != nil {
		if errors.Is(err, schema.ErrUnknownForm) {
			h.write(r, writeError(w, http.StatusNotFound, "form_not_found", "form "+name+" is not defined"))
			return
		}
		h.log.ErrorContext(ctx, "failed to create form", logger.Form(name), logger.Error(err))
		h.write(r, writeError(w, http.StatusInternalServerError, "internal_error", "failed to create form"))
		return
	}

	values, err := decodeValues(w, r, h.maxBody)
	if err != nil {
		status, code := http.StatusBadRequest, "invalid_body"
		if errors.Is(err, ErrUnsupportedMediaType) || errors.Is(err, ErrMissingContentType) {
			status, code = http.StatusUnsupportedMediaType, "unsupported_media_type"
		}
		h.log.DebugContext(ctx, "failed to decode submission", logger.Form(name), logger.Error(err))
		h.write(r, writeError(w, status, code, err.Error()))
		return
	}

	if h.norm != nil {
		normalize(values, *h.norm)
	}

	fields := f.Fields()
	resp := ValidationResponse{
		Form:   name,
		Fields: make(map[string]validator.Status, len(fields)),
	}
	for _, field := range fields {
		status, err := f.Set(field, values[field])
		if err != nil {
			h.log.ErrorContext(ctx, "failed to set field", logger.Form(name), logger.Field(field), logger.Error(err))
			continue
		}
		resp.Fields[field] = status
	}
	resp.Valid = f.Valid()

	h.log.InfoContext(ctx, "form validated", logger.Form(name), logger.Valid(resp.Valid))

	status := http.StatusOK
	if !resp.Valid {
		status = http.StatusUnprocessableEntity
	}
	h.write(r, writeJSON(w, status, resp))
}

func (h *handler) write(r *http.Request, err error) {
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
