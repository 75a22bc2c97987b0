package str

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64URLEncode encodes input with the URL and filename safe alphabet of
// RFC 4648. Padding "=" is kept.
func Base64URLEncode(input string) string {
	return base64.URLEncoding.EncodeToString([]byte(input))
}

// Base64URLDecode decodes URL-safe base64, with or without padding.
// Returns [ErrInvalidBase64] for malformed input.
func Base64URLDecode(input string) (string, error) {
	out, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(input, "="))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return string(out), nil
}
