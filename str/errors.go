package str

import "errors"

// ErrInvalidBase64 is returned by [Base64URLDecode] when the input is not
// valid URL-safe base64.
var ErrInvalidBase64 = errors.New("str: invalid base64url input")
