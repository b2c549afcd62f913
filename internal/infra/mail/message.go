// Package mail hands action emails (verification and password reset links) to an outbound queue.
// Rendering and SMTP delivery happen in a downstream worker.
package mail

import (
	"encoding/json"

	"warden/internal/domain/service"

	"github.com/pkg/errors"
)

// encode serializes the email body and the routing attributes shared by every transport.
func encode(email *service.ActionEmail) ([]byte, map[string]string, error) {
	data, err := json.Marshal(email)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"purpose": string(email.Purpose),
	}
	if email.RequestID != "" {
		attributes["request_id"] = email.RequestID
	}

	return data, attributes, nil
}
