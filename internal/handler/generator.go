package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/password"
	"github.com/vaultpass/passboard/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation and scoring.
type GeneratorHandler struct {
	generator *service.GeneratorService
	strength  *service.StrengthService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(gen *service.GeneratorService, strength *service.StrengthService) *GeneratorHandler {
	return &GeneratorHandler{generator: gen, strength: strength}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.generator.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("password generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.ScoreRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	writeJSON(w, http.StatusOK, h.strength.Score(req))
}

func isValidationError(err error) bool {
	return errors.Is(err, password.ErrLengthTooShort) ||
		errors.Is(err, password.ErrLengthTooLong)
}
