package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email: single @, at least one dot after it
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// Phone: optional leading +, then digits/spaces/hyphens/parentheses, 8+ chars
	PhonePattern = `^\+?[0-9\s\-\(\)]{8,}$`

	// Country dial code: 1 to 3 digits
	DialCodePattern = `^[0-9]{1,3}$`

	// Name length bounds per resource
	CategorieNameMinLength = 2
	CategorieNameMaxLength = 50
	PaysNameMinLength      = 2
	PaysNameMaxLength      = 100
	CelluleNameMinLength   = 2
	CelluleNameMaxLength   = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Phone    *regexp.Regexp
	DialCode *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Phone:    regexp.MustCompile(PhonePattern),
	DialCode: regexp.MustCompile(DialCodePattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(value))
}

// IsValidPhone reports whether the value looks like a phone number.
func IsValidPhone(value string) bool {
	return CompiledPatterns.Phone.MatchString(strings.TrimSpace(value))
}

// IsValidDialCode reports whether the value is a 1-3 digit dial code.
func IsValidDialCode(value string) bool {
	return CompiledPatterns.DialCode.MatchString(strings.TrimSpace(value))
}

// IsValidURL reports whether the value parses as an absolute http(s) URL.
func IsValidURL(value string) bool {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation. Optional empty values pass; everything
// else is checked after trimming.
func (v *StringValidation) Validate() bool {
	value := strings.TrimSpace(v.Value)

	if v.Required && value == "" {
		return false
	}

	if !v.Required && value == "" {
		return true
	}

	if v.MinLen > 0 && len(value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return false
	}

	return true
}
