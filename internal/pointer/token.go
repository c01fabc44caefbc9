package pointer

import "strings"

const (
	EncodedTilde = "~0"
	EncodedSlash = "~1"
	Separator    = '/'

	// AppendMarker addresses the position after the last array element.
	// It is only accepted as the final token of a Set.
	AppendMarker = "-"
)

var (
	tokenDecoder = strings.NewReplacer(EncodedSlash, "/", EncodedTilde, "~")
	tokenEncoder = strings.NewReplacer("~", EncodedTilde, "/", EncodedSlash)
)

// Decode unescapes a raw reference token. "~1" becomes "/" and "~0" becomes "~".
// A "~01" decodes to "~1", never to "/".
func Decode(raw string) string {
	if strings.IndexByte(raw, '~') < 0 {
		return raw
	}
	return tokenDecoder.Replace(raw)
}

// Escape is the inverse of Decode
func Escape(token string) string {
	if strings.IndexByte(token, '~') < 0 && strings.IndexByte(token, Separator) < 0 {
		return token
	}
	return tokenEncoder.Replace(token)
}

// IsIndex reports whether a decoded token is a valid array index:
// "0", or digits without a leading zero.
func IsIndex(tok string) bool {
	if tok == "0" {
		return true
	}
	if tok == "" || tok[0] == '0' {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}
