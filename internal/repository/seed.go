package repository

import (
	"context"
	"time"

	"github.com/vaultpass/passboard/internal/model"
)

// SeedCredentials returns the demo credentials shown on a fresh dashboard.
func SeedCredentials() []model.Credential {
	return []model.Credential{
		{Website: "example.com", Username: "user1", Password: "password123", Category: model.CategoryPersonal, LastUpdated: date(2023, time.May, 15)},
		{Website: "mybank.com", Username: "johndoe", Password: "securepass!", Category: model.CategoryFinance, LastUpdated: date(2023, time.June, 1)},
		{Website: "socialnetwork.com", Username: "jane_smith", Password: "p@ssw0rd", Category: model.CategorySocial, LastUpdated: date(2023, time.May, 20)},
		{Website: "workportal.com", Username: "jdoe", Password: "work1234!", Category: model.CategoryWork, LastUpdated: date(2023, time.July, 1)},
		{Website: "shopping.com", Username: "shopper1", Password: "shop2023", Category: model.CategoryPersonal, LastUpdated: date(2023, time.June, 15)},
	}
}

// Seed inserts the given credentials in order.
func (r *CredentialRepository) Seed(ctx context.Context, credentials []model.Credential) error {
	for i := range credentials {
		if err := r.Create(ctx, &credentials[i]); err != nil {
			return err
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
