package service

import (
	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/password"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	policy := password.Policy{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		RequireEachClass: req.RequireEachClass,
	}

	if policy.Length == 0 {
		policy.Length = password.DefaultLength
	}

	return s.GenerateWithPolicy(policy)
}

// GenerateWithPolicy produces a password for an already-resolved policy.
func (s *GeneratorService) GenerateWithPolicy(policy password.Policy) (model.GenerateResponse, error) {
	pw, err := password.Generate(policy)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	score := password.Score(pw)
	return model.GenerateResponse{
		Password: pw,
		Length:   len(pw),
		Strength: score,
		Tier:     password.TierFor(score).String(),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
