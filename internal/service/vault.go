package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/password"
	"github.com/vaultpass/passboard/internal/repository"
)

var ErrCredentialNotFound = errors.New("credential not found")

// Filter narrows the credential list. An empty Categories slice matches every
// category; Query matches website or username, ignoring case.
type Filter struct {
	Query      string
	Categories []model.Category
}

// VaultService handles credential business logic.
type VaultService struct {
	repo *repository.CredentialRepository
	now  func() time.Time
}

// NewVaultService creates a new VaultService.
func NewVaultService(repo *repository.CredentialRepository) *VaultService {
	return &VaultService{repo: repo, now: time.Now}
}

// Create validates the draft and stores it as a new credential dated today.
func (s *VaultService) Create(ctx context.Context, req model.CredentialRequest) (model.CredentialResponse, error) {
	c, err := s.fromRequest(req)
	if err != nil {
		return model.CredentialResponse{}, err
	}

	if err := s.repo.Create(ctx, &c); err != nil {
		return model.CredentialResponse{}, err
	}

	slog.Info("credential added", "id", c.ID, "website", c.Website)
	return toResponse(c), nil
}

// Update validates the draft and replaces the credential with the given ID.
func (s *VaultService) Update(ctx context.Context, id int64, req model.CredentialRequest) (model.CredentialResponse, error) {
	c, err := s.fromRequest(req)
	if err != nil {
		return model.CredentialResponse{}, err
	}
	c.ID = id

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return model.CredentialResponse{}, ErrCredentialNotFound
		}
		return model.CredentialResponse{}, err
	}

	slog.Info("credential updated", "id", c.ID, "website", c.Website)
	return toResponse(c), nil
}

// Delete removes a credential.
func (s *VaultService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return ErrCredentialNotFound
	}
	if err == nil {
		slog.Info("credential deleted", "id", id)
	}
	return err
}

// Get returns a single credential.
func (s *VaultService) Get(ctx context.Context, id int64) (model.CredentialResponse, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return model.CredentialResponse{}, ErrCredentialNotFound
		}
		return model.CredentialResponse{}, err
	}
	return toResponse(c), nil
}

// List returns the credentials matching f, ordered by ID.
func (s *VaultService) List(ctx context.Context, f Filter) ([]model.CredentialResponse, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(f.Query)
	result := make([]model.CredentialResponse, 0, len(all))
	for _, c := range all {
		if !f.matchesCategory(c.Category) {
			continue
		}
		if !strings.Contains(strings.ToLower(c.Website), query) &&
			!strings.Contains(strings.ToLower(c.Username), query) {
			continue
		}
		result = append(result, toResponse(c))
	}
	return result, nil
}

// Stats summarises the whole collection, ignoring any filter.
func (s *VaultService) Stats(ctx context.Context) (model.StatsResponse, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	stats := model.StatsResponse{
		Total:      len(all),
		ByCategory: make(map[model.Category]int, len(model.Categories())),
	}
	for _, c := range model.Categories() {
		stats.ByCategory[c] = 0
	}
	for _, c := range all {
		stats.ByCategory[c.Category]++
		if password.Score(c.Password) >= password.StrongThreshold {
			stats.Strong++
		}
	}

	if stats.Total > 0 {
		stats.SecurityScore += 10
	}
	if stats.Strong > 0 {
		stats.SecurityScore += 10
	}
	return stats, nil
}

func (f Filter) matchesCategory(c model.Category) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, want := range f.Categories {
		if want == c {
			return true
		}
	}
	return false
}

// fromRequest runs form validation and builds a credential stamped with today's date.
func (s *VaultService) fromRequest(req model.CredentialRequest) (model.Credential, error) {
	verr := &ValidationError{}

	website := strings.TrimSpace(req.Website)
	if website == "" {
		verr.add(FieldWebsite, "Website is required")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		verr.add(FieldUsername, "Username is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		verr.add(FieldPassword, "Password is required")
	} else if utf8.RuneCountInString(req.Password) < password.MinLength {
		verr.add(FieldPassword, "Password must be at least 8 characters long")
	}

	category := model.CategoryOther
	if strings.TrimSpace(req.Category) != "" {
		c, ok := model.ParseCategory(req.Category)
		if !ok {
			verr.add(FieldCategory, "Category is invalid")
		}
		category = c
	}

	if !verr.empty() {
		return model.Credential{}, verr
	}

	return model.Credential{
		Website:     website,
		Username:    username,
		Password:    req.Password,
		Category:    category,
		LastUpdated: today(s.now()),
	}, nil
}

func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toResponse(c model.Credential) model.CredentialResponse {
	score := password.Score(c.Password)
	return model.CredentialResponse{
		ID:          c.ID,
		Website:     c.Website,
		Username:    c.Username,
		Password:    c.Password,
		Category:    c.Category,
		LastUpdated: c.LastUpdated.Format(model.DateLayout),
		Strength:    score,
		Tier:        password.TierFor(score).String(),
	}
}
