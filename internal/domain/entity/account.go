// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Account is a single identity that can hold credentials.
// It is never hard-deleted; deactivation flips Active to false.
type Account struct {
	ID           uuid.UUID // Stable unique identifier.
	Email        string    // Normalized (lowercase, NFC) login email, unique.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash; federated-only accounts carry a hash of an unusable random secret.
	Role         Role      // Single role label used for authorization.
	Active       bool      // Inactive accounts fail every credential check.

	// Federated identity, empty for local-only accounts.
	Provider             ProviderType
	ProviderUserID       string
	ProviderAccessGrant  string
	ProviderRefreshGrant string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFederated reports whether the account was linked to an external identity provider.
func (a *Account) IsFederated() bool {
	return a.Provider != "" && a.Provider != ProviderTypeLocal
}

// Principal returns the minimal projection downstream authorization needs.
func (a *Account) Principal(accessToken string) *Principal {
	return &Principal{
		AccountID:   a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		Active:      a.Active,
		AccessToken: accessToken,
	}
}

// NormalizeEmail trims, lowercases and NFC-normalizes an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	lowered := cases.Lower(language.Und).String(strings.TrimSpace(email))

	return norm.NFC.String(lowered)
}

// DisplayName builds a display name from an explicit name or first/last name parts.
func DisplayName(name, firstName, lastName string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}

	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}
