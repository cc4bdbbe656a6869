// Package token decodes the claims carried by the compact signed tokens the
// catalog backend issues at login.
//
// Only the payload segment is read. The signature is not verified: the
// gateway does not hold the backend's signing key, and the decoded roles are
// only used to pick a landing route and gate gateway views.
package token

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront/gateway/internal/core/domain"
)

// Segment decoding is URL-safe base64 with optional padding.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode extracts the claims from a three-segment token.
func Decode(raw string) (domain.Claims, error) {
	segments := strings.Split(raw, ".")
	if len(segments) != 3 {
		return domain.Claims{}, &domain.DecodeError{Reason: "expected three dot-separated segments"}
	}

	data, err := segmentParser.DecodeSegment(segments[1])
	if err != nil {
		return domain.Claims{}, &domain.DecodeError{Reason: "payload is not valid base64", Err: err}
	}
	if !utf8.Valid(data) {
		return domain.Claims{}, &domain.DecodeError{Reason: "payload is not valid UTF-8"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.Claims{}, &domain.DecodeError{Reason: "payload is not a JSON object", Err: err}
	}
	if fields == nil {
		return domain.Claims{}, &domain.DecodeError{Reason: "payload is not a JSON object"}
	}

	claims := domain.Claims{Roles: []string{}}
	if raw, ok := fields["roles"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &claims.Roles); err != nil {
			return domain.Claims{}, &domain.DecodeError{Reason: "roles is not a list of strings", Err: err}
		}
	}

	// sub and exp are informational; a malformed value is ignored.
	if raw, ok := fields["sub"]; ok {
		_ = json.Unmarshal(raw, &claims.Subject)
	}
	if raw, ok := fields["exp"]; ok {
		var exp jwt.NumericDate
		if json.Unmarshal(raw, &exp) == nil {
			claims.ExpiresAt = exp.Time.UTC()
		}
	}

	return claims, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
