package service

import (
	"errors"
	"testing"

	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/password"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	if len(resp.Password) != 12 {
		t.Errorf("expected password length 12, got %d", len(resp.Password))
	}
	if resp.Strength != password.Score(resp.Password) {
		t.Errorf("strength %d does not match score of generated password", resp.Strength)
	}
	if resp.Tier == "" {
		t.Error("expected a tier")
	}
}

func TestGenerate_LowercaseOnly(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    12,
		Uppercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if c < 'a' || c > 'z' {
			t.Errorf("unexpected character %q in lowercase-only password", c)
		}
	}
	// Length and lowercase are the only criteria a lowercase password can meet.
	if resp.Strength != 40 || resp.Tier != "medium" {
		t.Errorf("expected 40/medium, got %d/%s", resp.Strength, resp.Tier)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, password.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, password.ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestStrengthService_Score(t *testing.T) {
	svc := NewStrengthService()

	tests := []struct {
		password string
		strength int
		tier     string
	}{
		{"password123", 60, "strong"},
		{"P@ss1", 80, "strong"},
		{"aaaaaaaa", 40, "medium"},
		{"abc", 20, "weak"},
		{"", 0, "weak"},
	}

	for _, tt := range tests {
		resp := svc.Score(model.ScoreRequest{Password: tt.password})
		if resp.Strength != tt.strength || resp.Tier != tt.tier {
			t.Errorf("Score(%q) = %d/%s, want %d/%s", tt.password, resp.Strength, resp.Tier, tt.strength, tt.tier)
		}
	}
}
