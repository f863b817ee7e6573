package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/vaultpass/passboard/internal/middleware"
	"github.com/vaultpass/passboard/internal/service"
)

// NewRouter wires every API route. A nil limiter disables rate limiting.
func NewRouter(vault *service.VaultService, gen *service.GeneratorService, strength *service.StrengthService, limiter *middleware.IPRateLimiter) http.Handler {
	genHandler := NewGeneratorHandler(gen, strength)
	vaultHandler := NewVaultHandler(vault)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(middleware.RateLimit(limiter))
		}

		r.Post("/generate", genHandler.HandleGenerate)
		r.Post("/strength", genHandler.HandleStrength)

		r.Get("/stats", vaultHandler.HandleStats)

		r.Get("/credentials", vaultHandler.HandleListCredentials)
		r.Post("/credentials", vaultHandler.HandleCreateCredential)
		r.Get("/credentials/{id}", vaultHandler.HandleGetCredential)
		r.Put("/credentials/{id}", vaultHandler.HandleUpdateCredential)
		r.Delete("/credentials/{id}", vaultHandler.HandleDeleteCredential)
	})

	return r
}
