package errors

import (
	"strings"
	"unicode"
)

// ValidateAttributeKey validates an element attribute key.
// Keys name entries in an element's data bag and end up verbatim inside
// generated stylesheet selectors and JavaScript, so the rules are
// intentionally conservative:
//   - No empty keys
//   - No control characters
//   - No quotes or brackets (would break selector strings)
//   - Maximum length of 128 characters
func ValidateAttributeKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidAttribute, "attribute key cannot be empty")
	}

	if len(key) > 128 {
		return New(ErrCodeInvalidAttribute, "attribute key too long (max 128 characters)")
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAttribute, "attribute key contains invalid control characters")
		}
	}

	if strings.ContainsAny(key, `"'[]`) {
		return New(ErrCodeInvalidAttribute, "attribute key contains invalid characters: %q", key)
	}

	return nil
}

// ValidateHexColor validates a CSS hex color string (e.g., "#e41a1c").
// Both the short (#rgb) and long (#rrggbb) forms are accepted.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidPalette, "color cannot be empty")
	}

	if !strings.HasPrefix(color, "#") {
		return New(ErrCodeInvalidPalette, "color must start with '#': %q", color)
	}

	hex := color[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return New(ErrCodeInvalidPalette, "color must be #rgb or #rrggbb: %q", color)
	}

	for _, r := range hex {
		if !isHexDigit(r) {
			return New(ErrCodeInvalidPalette, "color contains non-hex digit: %q", color)
		}
	}

	return nil
}

// ValidatePalette validates every color in a palette.
// An empty palette is rejected since color assignment needs at least one entry.
func ValidatePalette(colors []string) error {
	if len(colors) == 0 {
		return New(ErrCodeInvalidPalette, "palette cannot be empty")
	}
	for _, c := range colors {
		if err := ValidateHexColor(c); err != nil {
			return err
		}
	}
	return nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
