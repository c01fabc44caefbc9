package pointer

import "strings"

// Parse splits a non-empty pointer into its raw reference tokens.
// Tokens are not unescaped; a trailing "/" yields a trailing empty token.
//
// The empty pointer refers to the whole document and is handled by the
// callers, so Parse rejects it like any other pointer lacking a leading "/".
func Parse(pointer string) ([]string, error) {
	if pointer == "" || pointer[0] != Separator {
		return nil, &Error{
			Kind:    KindMalformedPointer,
			Pointer: pointer,
			Message: ErrMalformedPointer.Message,
		}
	}
	return strings.Split(pointer[1:], string(Separator)), nil
}

// Tokens returns the decoded reference tokens of pointer.
// The empty pointer has no tokens.
func Tokens(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	raw, err := Parse(pointer)
	if err != nil {
		return nil, err
	}
	for i, tok := range raw {
		raw[i] = Decode(tok)
	}
	return raw, nil
}

// Join builds a pointer from decoded tokens, escaping each one
func Join(tokens ...string) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteByte(Separator)
		b.WriteString(Escape(tok))
	}
	return b.String()
}
