package auth

import (
	"strings"
	"testing"

	"warden/config"
	domainerrors "warden/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newPolicyHasher() *bcryptHasher {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.PasswordStrength = config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
		ForbiddenWords:   []string{"password", "admin"},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	second, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 100))
	assert.Error(t, err)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newPolicyHasher()

	for _, password := range []string{"StrongPass123!", "MySecure@Pass1", "Complex#Secret9", "Pässphräse123!"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr error
		details     string
	}{
		{"123", domainerrors.ErrPasswordStrength, "at least 8 characters"},
		{strings.Repeat("Aa1!", 20), domainerrors.ErrPasswordStrength, "at most 72 bytes"},
		{"PASSWORD123!", domainerrors.ErrPasswordStrength, "lowercase"},
		{"strongpass123!", domainerrors.ErrPasswordStrength, "uppercase"},
		{"StrongPassABC!", domainerrors.ErrPasswordStrength, "number"},
		{"StrongPass123", domainerrors.ErrPasswordStrength, "special character"},
		{"MyPassword123!", domainerrors.ErrPasswordForbiddenWords, ""},
		{"SuperAdmin123!", domainerrors.ErrPasswordForbiddenWords, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tc.details)
		})
	}
}
