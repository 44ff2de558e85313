package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// E.164-style phone: mandatory +, first digit non-zero, 7-15 digits total
	phoneRegex = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

	// Strict ISO date shape; real-calendar check is done by time.Parse
	dateRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

const dateLayout = "2006-01-02"

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("intl_phone", IntlPhone)
	_ = v.RegisterValidation("date_string", DateString)
	_ = v.RegisterValidation("past_date", PastDate)
	_ = v.RegisterValidation("future_date", FutureDate)
	_ = v.RegisterValidation("hex_color", HexColor)
	_ = v.RegisterValidation("linkedin_url", LinkedInURL)
	_ = v.RegisterValidation("github_url", GitHubURL)
	_ = v.RegisterValidation("unique_fold", UniqueFold)
}

// IntlPhone validates an international phone number structure
func IntlPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}

// DateString validates a YYYY-MM-DD string that parses to a real
// calendar date (2023-02-31 is rejected by time.Parse)
func DateString(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	if !dateRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse(dateLayout, val)
	return err == nil
}

// PastDate validates that a date string is not in the future. The
// boundary is end of today: a fact dated today is still valid.
// Unparseable values pass; date_string owns the format error.
func PastDate(fl validator.FieldLevel) bool {
	d, ok := parseDate(fl.Field().String())
	if !ok {
		return true
	}
	return d.Before(startOfTomorrow())
}

// FutureDate validates that a date string is today or later. The
// boundary is start of today so an availability date of today passes.
func FutureDate(fl validator.FieldLevel) bool {
	d, ok := parseDate(fl.Field().String())
	if !ok {
		return true
	}
	return !d.Before(startOfToday())
}

// HexColor validates a #RRGGBB color value
func HexColor(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return hexColorRegex.MatchString(val)
}

// LinkedInURL validates that a URL points at linkedin.com
func LinkedInURL(fl validator.FieldLevel) bool {
	return hostMatches(fl.Field().String(), "linkedin.com")
}

// GitHubURL validates that a URL points at github.com
func GitHubURL(fl validator.FieldLevel) bool {
	return hostMatches(fl.Field().String(), "github.com")
}

// UniqueFold validates that a []string has no duplicates after
// trimming and case folding
func UniqueFold(fl validator.FieldLevel) bool {
	values, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

func parseDate(val string) (time.Time, bool) {
	if val == "" || !dateRegex.MatchString(val) {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, val)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfTomorrow() time.Time {
	return startOfToday().AddDate(0, 0, 1)
}

func hostMatches(raw, domain string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == domain || strings.HasSuffix(host, "."+domain)
}
