package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// CheckResult is the outcome of a business-logic check. These run only
// after a clean structural pass and are returned to callers separately
// from field errors; callers decide whether to block or surface them
// as warnings.
type CheckResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

func okResult() CheckResult {
	return CheckResult{IsValid: true}
}

func failResult(errs ...string) CheckResult {
	return CheckResult{IsValid: false, Errors: errs}
}

// CheckEntryLevelConsistency flags profiles claiming zero years of
// experience but an implausibly long skill list.
func CheckEntryLevelConsistency(experienceYears, skillCount int) CheckResult {
	if experienceYears == 0 && skillCount > 10 {
		return failResult(fmt.Sprintf(
			"profile claims 0 years of experience but lists %d skills; consider reducing the list or updating experience", skillCount))
	}
	return okResult()
}

// CheckLinkedInProfileURL verifies the URL points at an actual profile
// path, not just the bare domain. Domain membership is already enforced
// structurally by the linkedin_url tag.
func CheckLinkedInProfileURL(rawURL string) CheckResult {
	if rawURL == "" {
		return okResult()
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return failResult("linkedin url could not be parsed")
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return failResult("linkedin url should point at a profile (e.g. linkedin.com/in/your-name), not the bare domain")
	}
	return okResult()
}

// portfolioRule is the per-type requirement table for portfolio items.
// The item type acts as a discriminant; mustHaveURL is also enforced
// structurally at the rule-set level, the rest is advisory.
type portfolioRule struct {
	mustHaveURL   bool
	needFileOrURL bool
	wantDate      bool
	wantRole      bool
	repoHint      bool
}

var portfolioRules = map[string]portfolioRule{
	"link":     {mustHaveURL: true},
	"code":     {needFileOrURL: true, repoHint: true},
	"project":  {needFileOrURL: true, wantDate: true, wantRole: true},
	"article":  {needFileOrURL: true},
	"design":   {needFileOrURL: true},
	"document": {needFileOrURL: true},
}

// CheckPortfolioRequirements applies the per-type requirement table.
func CheckPortfolioRequirements(itemType string, hasFile bool, externalURL, projectDate, role string) CheckResult {
	rule, known := portfolioRules[itemType]
	if !known {
		return failResult("unknown portfolio item type: " + itemType)
	}

	var errs []string
	if rule.mustHaveURL && externalURL == "" {
		errs = append(errs, itemType+" items require an external url")
	}
	if rule.needFileOrURL && !hasFile && externalURL == "" {
		errs = append(errs, itemType+" items need an attached file or an external url")
	}
	if rule.repoHint && !hasFile && externalURL == "" {
		errs = append(errs, "code items work best with a repository url")
	}
	if rule.wantDate && projectDate == "" {
		errs = append(errs, "project items should carry a project date")
	}
	if rule.wantRole && role == "" {
		errs = append(errs, "project items should describe your role")
	}

	if len(errs) > 0 {
		return failResult(errs...)
	}
	return okResult()
}

// nearWhiteColors are too light to render readable text on the
// generated CV; they are rejected outright.
var nearWhiteColors = map[string]struct{}{
	"#FFFFFF": {},
	"#FFFFFE": {},
	"#FEFEFE": {},
}

// CheckTemplateColor rejects primary colors with no usable contrast.
func CheckTemplateColor(primaryHex string) CheckResult {
	if primaryHex == "" {
		return okResult()
	}
	if _, bad := nearWhiteColors[strings.ToUpper(primaryHex)]; bad {
		return failResult("primary color " + primaryHex + " is too light for contrast")
	}
	return okResult()
}
