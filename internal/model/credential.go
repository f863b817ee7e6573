package model

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format of LastUpdated.
const DateLayout = "2006-01-02"

// Category groups credentials on the dashboard.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryWork     Category = "Work"
	CategoryFinance  Category = "Finance"
	CategorySocial   Category = "Social"
	CategoryOther    Category = "Other"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryPersonal, CategoryWork, CategoryFinance, CategorySocial, CategoryOther}
}

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// Credential is a stored website login.
type Credential struct {
	ID          int64
	Website     string
	Username    string
	Password    string
	Category    Category
	LastUpdated time.Time // date only, midnight UTC
}

// CredentialRequest is the form draft used to create or edit a credential.
type CredentialRequest struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
	Category string `json:"category"`
}

// CredentialResponse is a credential as shown in the dashboard table.
type CredentialResponse struct {
	ID          int64    `json:"id"`
	Website     string   `json:"website"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Category    Category `json:"category"`
	LastUpdated string   `json:"last_updated"`
	Strength    int      `json:"strength"`
	Tier        string   `json:"tier"`
}

// StatsResponse summarises the collection for the dashboard header.
type StatsResponse struct {
	Total         int              `json:"total"`
	Strong        int              `json:"strong"`
	SecurityScore int              `json:"security_score"`
	ByCategory    map[Category]int `json:"by_category"`
}
