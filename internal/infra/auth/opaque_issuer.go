package auth

import (
	"encoding/hex"
	"time"

	"warden/internal/domain/entity"
	"warden/internal/domain/service"
	"warden/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// opaqueTokenBytes gives 256 bits of entropy.
const opaqueTokenBytes = 32

// opaqueIssuer produces random strings that carry no claims of their own.
type opaqueIssuer struct{}

// NewOpaqueIssuer is the constructor for opaqueIssuer.
func NewOpaqueIssuer() service.TokenIssuer {
	return &opaqueIssuer{}
}

func (o *opaqueIssuer) Style() service.TokenStyle {
	return service.TokenStyleOpaque
}

// Issue ignores subject, kind and ttl; the store row carries all of them.
func (o *opaqueIssuer) Issue(_ uuid.UUID, _ entity.CredentialKind, _ time.Duration) (string, error) {
	return util.RandomHex(opaqueTokenBytes)
}

// Parse only checks the shape so obviously bogus input never reaches the store.
func (o *opaqueIssuer) Parse(token string) (*service.TokenClaims, error) {
	if len(token) != opaqueTokenBytes*2 {
		return nil, errors.Wrap(service.ErrTokenMalformed, "unexpected opaque token length")
	}
	if _, err := hex.DecodeString(token); err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "opaque token is not hex")
	}

	return &service.TokenClaims{}, nil
}
