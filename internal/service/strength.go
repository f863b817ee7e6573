package service

import (
	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/password"
)

// StrengthService scores passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Score returns the strength percentage of req.Password and its tier.
func (s *StrengthService) Score(req model.ScoreRequest) model.ScoreResponse {
	score := password.Score(req.Password)
	return model.ScoreResponse{
		Strength: score,
		Tier:     password.TierFor(score).String(),
	}
}
