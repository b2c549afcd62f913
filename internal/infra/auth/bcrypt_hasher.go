package auth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"warden/config"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher, using the configured work factor and policy.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	return &bcryptHasher{
		cost:     normalizeCost(cfg.Auth.BcryptCost),
		strength: cfg.PasswordStrength,
	}
}

// NewBcryptHasherWithCost builds a hasher with the given cost and a minimal length-only policy.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost:     normalizeCost(cost),
		strength: config.PasswordStrengthConfig{MinLength: 8, MaxLength: 72},
	}
}

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}

	return cost
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength applies the configured policy to a new password.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.strength

	if policy.MinLength > 0 && utf8.RuneCountInString(password) < policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must be at least " + strconv.Itoa(policy.MinLength) + " characters long")
	}
	if policy.MaxLength > 0 && len(password) > policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must be at most " + strconv.Itoa(policy.MaxLength) + " bytes long")
	}
	if policy.RequireLowercase && !hasRune(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	}
	if policy.RequireUppercase && !hasRune(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	}
	if policy.RequireNumbers && !hasRune(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	}
	if policy.RequireSpecial && !hasRune(password, isSpecial) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}
	if containsForbiddenWords(password, policy.ForbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range words {
		if word != "" && strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}

	return false
}
