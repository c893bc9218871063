package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	dErrors "personnummer/pkg/domain-errors"
	"personnummer/pkg/personnummer"
	"personnummer/pkg/platform/httputil"
	"personnummer/pkg/requestcontext"
)

// Service defines the interface for identity number operations.
type Service interface {
	Parse(ctx context.Context, input any) (personnummer.Identity, error)
	Validate(ctx context.Context, input any) bool
	Format(ctx context.Context, input any, length int) (string, error)
}

// Handler wires identity number endpoints to the identity service.
type Handler struct {
	service       Service
	logger        *slog.Logger
	defaultLength int
}

// New constructs an identity handler. defaultLength is used by the format
// endpoint when a request omits the length.
func New(service Service, logger *slog.Logger, defaultLength int) *Handler {
	return &Handler{
		service:       service,
		logger:        logger,
		defaultLength: defaultLength,
	}
}

// Register mounts identity endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/personnummer", func(r chi.Router) {
		r.Post("/parse", h.HandleParse)
		r.Post("/validate", h.HandleValidate)
		r.Post("/format", h.HandleFormat)
	})
}

// HandleParse handles POST /personnummer/parse requests.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ParseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	ctx = req.applyReferenceTime(ctx)

	id, err := h.service.Parse(ctx, req.Input)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "identity number parsed",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromIdentity(id, requestcontext.Now(ctx)))
}

// HandleValidate handles POST /personnummer/validate requests. Any decodable
// body yields 200; invalid numbers are reported in the body.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	ctx = req.applyReferenceTime(ctx)

	httputil.WriteJSON(w, http.StatusOK, &ValidateResponse{Valid: h.service.Validate(ctx, req.Input)})
}

// HandleFormat handles POST /personnummer/format requests.
func (h *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FormatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	ctx = req.applyReferenceTime(ctx)

	length := req.Length
	if length == 0 {
		length = h.defaultLength
	}

	formatted, err := h.service.Format(ctx, req.Input, length)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &FormatResponse{Formatted: formatted, Length: length})
}

// writeError adds the parse error kind to validation failures so clients can
// tell a bad checksum from a bad date.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var pe *personnummer.ParseError
	if errors.As(err, &pe) && dErrors.HasCode(err, dErrors.CodeValidation) {
		httputil.WriteJSON(w, dErrors.HTTPStatus(dErrors.CodeValidation), &ParseErrorResponse{
			Error:            string(dErrors.CodeValidation),
			ErrorDescription: pe.Message,
			Kind:             string(pe.Kind),
		})
		return
	}
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, "identity operation failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
