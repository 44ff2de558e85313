package validation_test

import (
	"testing"

	"go-jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestCheckEntryLevelConsistency(t *testing.T) {
	t.Run("flags zero experience with an oversized skill list", func(t *testing.T) {
		res := validation.CheckEntryLevelConsistency(0, 11)
		assert.False(t, res.IsValid)
		assert.Len(t, res.Errors, 1)
	})

	t.Run("allows zero experience with a modest skill list", func(t *testing.T) {
		assert.True(t, validation.CheckEntryLevelConsistency(0, 10).IsValid)
	})

	t.Run("experienced profiles are never flagged", func(t *testing.T) {
		assert.True(t, validation.CheckEntryLevelConsistency(5, 40).IsValid)
	})
}

func TestCheckLinkedInProfileURL(t *testing.T) {
	assert.True(t, validation.CheckLinkedInProfileURL("").IsValid)
	assert.True(t, validation.CheckLinkedInProfileURL("https://linkedin.com/in/jane-doe").IsValid)

	res := validation.CheckLinkedInProfileURL("https://linkedin.com/")
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors[0], "bare domain")
}

func TestCheckPortfolioRequirements(t *testing.T) {
	t.Run("link type requires an external url", func(t *testing.T) {
		res := validation.CheckPortfolioRequirements("link", false, "", "", "")
		assert.False(t, res.IsValid)

		assert.True(t, validation.CheckPortfolioRequirements("link", false, "https://x.com", "", "").IsValid)
	})

	t.Run("code type wants a file or repository url", func(t *testing.T) {
		res := validation.CheckPortfolioRequirements("code", false, "", "", "")
		assert.False(t, res.IsValid)

		assert.True(t, validation.CheckPortfolioRequirements("code", true, "", "", "").IsValid)
		assert.True(t, validation.CheckPortfolioRequirements("code", false, "https://github.com/x/y", "", "").IsValid)
	})

	t.Run("project type recommends date and role", func(t *testing.T) {
		res := validation.CheckPortfolioRequirements("project", true, "", "", "")
		assert.False(t, res.IsValid)
		assert.Len(t, res.Errors, 2)

		assert.True(t, validation.CheckPortfolioRequirements("project", true, "", "2024-05-01", "Lead developer").IsValid)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		assert.False(t, validation.CheckPortfolioRequirements("sculpture", false, "", "", "").IsValid)
	})
}

func TestCheckTemplateColor(t *testing.T) {
	t.Run("rejects near-white primaries regardless of case", func(t *testing.T) {
		for _, hex := range []string{"#FFFFFF", "#ffffff", "#FFFFFE", "#FEFEFE"} {
			res := validation.CheckTemplateColor(hex)
			assert.False(t, res.IsValid, hex)
			assert.Contains(t, res.Errors[0], "too light")
		}
	})

	t.Run("accepts readable colors and absent values", func(t *testing.T) {
		assert.True(t, validation.CheckTemplateColor("#1A2B3C").IsValid)
		assert.True(t, validation.CheckTemplateColor("").IsValid)
	})
}
