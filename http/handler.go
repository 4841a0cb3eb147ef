// Package http exposes content extraction over HTTP. Clients POST the page
// HTML together with its URL and receive the extraction result wrapped in
// a {success, data} envelope.
package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/fwojciec/clipper/goquery"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxBodyBytes bounds the size of an HTML request body.
const DefaultMaxBodyBytes = 10 << 20

// Ensure Handler implements http.Handler at compile time.
var _ http.Handler = (*Handler)(nil)

// Handler serves GET /ping and POST /extract.
type Handler struct {
	service clipper.ContentService
	logger  *slog.Logger
	mux     *http.ServeMux
	group   singleflight.Group

	maxBodyBytes int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for failed requests.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMaxBodyBytes sets the request body limit.
// Defaults to DefaultMaxBodyBytes if not specified.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		h.maxBodyBytes = n
	}
}

// NewHandler creates a Handler backed by service.
func NewHandler(service clipper.ContentService, opts ...Option) *Handler {
	h := &Handler{
		service:      service,
		logger:       slog.New(slog.DiscardHandler),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.mux = http.NewServeMux()
	h.mux.HandleFunc("GET /ping", h.handlePing)
	h.mux.HandleFunc("POST /extract", h.handleExtract)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Response is the envelope written for every request.
type Response struct {
	Success bool                      `json:"success"`
	Data    *clipper.ExtractionResult `json:"data,omitempty"`
	Error   string                    `json:"error,omitempty"`
	Code    string                    `json:"code,omitempty"`
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true})
}

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		h.writeError(w, r, clipper.Errorf(clipper.EINVALID, "url query parameter required"))
		return
	}
	if u, err := url.Parse(pageURL); err != nil || !u.IsAbs() {
		h.writeError(w, r, clipper.Errorf(clipper.EINVALID, "invalid page url %q", pageURL))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.writeError(w, r, clipper.Errorf(clipper.EINVALID, "reading request body: %v", err))
		return
	}

	// Identical requests in flight share one extraction. The shared call
	// must not be canceled by whichever client started it.
	key := pageURL + "\x00" + extract.ComputeHash(string(body))
	v, err, _ := h.group.Do(key, func() (any, error) {
		host, err := goquery.ParseHost(string(body), pageURL)
		if err != nil {
			return nil, err
		}
		return h.service.ExtractContent(context.WithoutCancel(r.Context()), host)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: v.(*clipper.ExtractionResult)})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := clipper.ErrorCode(err)
	status := StatusCode(code)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, Response{
		Success: false,
		Error:   clipper.ErrorMessage(err),
		Code:    code,
	})
}

// StatusCode maps an application error code to an HTTP status.
func StatusCode(code string) int {
	switch code {
	case clipper.EINVALID:
		return http.StatusBadRequest
	case clipper.ENOTFOUND:
		return http.StatusNotFound
	case clipper.ECONFLICT:
		return http.StatusConflict
	case clipper.ENOCONTENT:
		return http.StatusUnprocessableEntity
	case clipper.ELOADTIMEOUT:
		return http.StatusGatewayTimeout
	case clipper.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
