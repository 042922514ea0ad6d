package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/spotlight-site/internal/api/shared"
	"github.com/phrazzld/spotlight-site/internal/domain"
	"github.com/phrazzld/spotlight-site/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	logger         *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService service.ContactService, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		contactService: contactService,
		logger:         logger.With("component", "contact_handler"),
	}
}

// Contact handles /api/contact. Only POST is accepted; preflight OPTIONS is
// answered by the CORS middleware before reaching here.
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError,
				fmt.Errorf("panic in contact handler: %v", rec))
		}
	}()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
		return
	}

	var req ContactRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestFormat, err)
		return
	}

	receipt, err := h.contactService.Submit(r.Context(), domain.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		var opts []shared.ResponseOption
		if fields := fieldErrors(err); fields != nil {
			opts = append(opts, shared.WithFieldErrors(fields))
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ContactResponse{
		Success: true,
		Message: ContactSuccessMessage,
		ID:      receipt.ID,
	})
}
