package domain

import (
	"fmt"
	"unicode/utf8"
)

// GuardLength returns input unchanged when it is shorter than maxLength
// characters. Otherwise it returns an error wrapping ErrLengthExceeded that
// names param.
func GuardLength(input string, maxLength int, param string) (string, error) {
	if utf8.RuneCountInString(input) >= maxLength {
		return "", fmt.Errorf("%s: should not exceed maximum length of %d characters: %w",
			param, maxLength, ErrLengthExceeded)
	}
	return input, nil
}
