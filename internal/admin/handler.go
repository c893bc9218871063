// Package admin exposes operator endpoints behind the admin token.
package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "personnummer/pkg/domain-errors"
	audit "personnummer/pkg/platform/audit"
	"personnummer/pkg/platform/httputil"
	adminmw "personnummer/pkg/platform/middleware/admin"
	"personnummer/pkg/requestcontext"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 1000
)

// AuditLister reads back recently recorded audit events.
type AuditLister interface {
	List(ctx context.Context, limit int) ([]audit.Event, error)
}

type Handler struct {
	audit  AuditLister
	logger *slog.Logger
	token  string
}

func New(lister AuditLister, logger *slog.Logger, token string) *Handler {
	return &Handler{audit: lister, logger: logger, token: token}
}

// Register mounts admin endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(adminmw.RequireAdminToken(h.token, h.logger))
		r.Get("/audit", h.HandleListAudit)
	})
}

// HandleListAudit handles GET /admin/audit?limit=N, returning the most
// recent events oldest first.
func (h *Handler) HandleListAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	limit := defaultAuditLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxAuditLimit {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be between 1 and 1000"))
			return
		}
		limit = n
	}

	events, err := h.audit.List(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit events",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, fromEvents(events))
}
