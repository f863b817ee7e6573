package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vaultpass/passboard/internal/model"
)

var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository keeps credentials in memory for the lifetime of the process.
type CredentialRepository struct {
	mu          sync.RWMutex
	credentials map[int64]model.Credential
	lastID      int64
}

// NewCredentialRepository creates an empty CredentialRepository.
func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{credentials: make(map[int64]model.Credential)}
}

// Create stores a new credential and sets the assigned ID on it.
// IDs are one above the highest ID ever issued, so a deleted ID is never reused.
func (r *CredentialRepository) Create(ctx context.Context, c *model.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	c.ID = r.lastID
	r.credentials[c.ID] = *c
	return nil
}

// Get retrieves a credential by ID.
func (r *CredentialRepository) Get(ctx context.Context, id int64) (model.Credential, error) {
	if err := ctx.Err(); err != nil {
		return model.Credential{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.credentials[id]
	if !ok {
		return model.Credential{}, ErrCredentialNotFound
	}
	return c, nil
}

// List returns every credential ordered by ID.
func (r *CredentialRepository) List(ctx context.Context) ([]model.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Credential, 0, len(r.credentials))
	for _, c := range r.credentials {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update replaces the stored credential with the same ID.
func (r *CredentialRepository) Update(ctx context.Context, c model.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.credentials[c.ID]; !ok {
		return ErrCredentialNotFound
	}
	r.credentials[c.ID] = c
	return nil
}

// Delete removes a credential by ID.
func (r *CredentialRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.credentials[id]; !ok {
		return ErrCredentialNotFound
	}
	delete(r.credentials, id)
	return nil
}
