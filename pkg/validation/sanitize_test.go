package validation_test

import (
	"testing"

	"go-jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSkills(t *testing.T) {
	t.Run("trims, dedupes case-insensitively and canonicalizes", func(t *testing.T) {
		got := validation.SanitizeSkills([]string{" react ", "REACT", "node", ""})
		assert.Equal(t, []string{"React", "Node"}, got)
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		got := validation.SanitizeSkills([]string{"golang", "GoLang"})
		assert.Equal(t, []string{"Golang"}, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := validation.SanitizeSkills([]string{"  TypeScript", "docker", "Docker "})
		twice := validation.SanitizeSkills(once)
		assert.Equal(t, once, twice)
	})
}

func TestSanitizeTechnologies(t *testing.T) {
	t.Run("preserves internal casing", func(t *testing.T) {
		got := validation.SanitizeTechnologies([]string{"graphQL", "postgreSQL", " iOS "})
		assert.Equal(t, []string{"GraphQL", "PostgreSQL", "IOS"}, got)
	})

	t.Run("dedupes ignoring case", func(t *testing.T) {
		got := validation.SanitizeTechnologies([]string{"Redis", "redis", "REDIS"})
		assert.Equal(t, []string{"Redis"}, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := validation.SanitizeTechnologies([]string{"gRPC", "Kafka", "kafka"})
		twice := validation.SanitizeTechnologies(once)
		assert.Equal(t, once, twice)
	})
}
