package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// HashToken returns the SHA-256 hex digest of a raw credential string.
// Only digests are persisted, so a leaked table cannot be replayed as bearer tokens.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// HashTokens hashes every token, skipping empty strings.
func HashTokens(tokens ...string) []string {
	hashes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		hashes = append(hashes, HashToken(token))
	}

	return hashes
}

// RandomHex returns n cryptographically random bytes encoded as hex.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// HumanDuration renders a duration compactly for log lines: "850ms", "45s", "2m30s", "1h30m".
// Durations of a second or more are rounded to the second.
func HumanDuration(d time.Duration) string {
	switch {
	case d < 0:
		return "-" + HumanDuration(-d)
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	d = d.Round(time.Second)
	hours, rest := d/time.Hour, d%time.Hour
	minutes, seconds := rest/time.Minute, (rest%time.Minute)/time.Second

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
