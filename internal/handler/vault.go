package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/service"
)

// VaultHandler handles HTTP requests for credential operations.
type VaultHandler struct {
	service *service.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(svc *service.VaultService) *VaultHandler {
	return &VaultHandler{service: svc}
}

// HandleListCredentials handles GET /api/v1/credentials requests.
// Query parameters: q (search text) and category (repeatable or comma separated).
func (h *VaultHandler) HandleListCredentials(w http.ResponseWriter, r *http.Request) {
	filter := service.Filter{Query: r.URL.Query().Get("q")}

	for _, raw := range r.URL.Query()["category"] {
		for _, name := range strings.Split(raw, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			c, ok := model.ParseCategory(name)
			if !ok {
				writeJSON(w, http.StatusBadRequest, errorResponse("unknown category: "+name))
				return
			}
			filter.Categories = append(filter.Categories, c)
		}
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.internalError(w, "list credentials", err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleGetCredential handles GET /api/v1/credentials/{id} requests.
func (h *VaultHandler) HandleGetCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := credentialID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "get credential", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateCredential handles POST /api/v1/credentials requests.
func (h *VaultHandler) HandleCreateCredential(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, "create credential", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdateCredential handles PUT /api/v1/credentials/{id} requests.
func (h *VaultHandler) HandleUpdateCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := credentialID(w, r)
	if !ok {
		return
	}

	var req model.CredentialRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, "update credential", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteCredential handles DELETE /api/v1/credentials/{id} requests.
func (h *VaultHandler) HandleDeleteCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := credentialID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, "delete credential", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleStats handles GET /api/v1/stats requests.
func (h *VaultHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.internalError(w, "stats", err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *VaultHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, service.ErrCredentialNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.internalError(w, op, err)
	}
}

func (h *VaultHandler) internalError(w http.ResponseWriter, op string, err error) {
	slog.Error("vault operation failed", "op", op, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func credentialID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid credential id"))
		return 0, false
	}
	return id, true
}
