package validation_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type primitives struct {
	Phone     string   `json:"phone" validate:"omitempty,intl_phone"`
	Date      string   `json:"date" validate:"omitempty,date_string"`
	PastDate  string   `json:"past_date" validate:"omitempty,date_string,past_date"`
	NextDate  string   `json:"next_date" validate:"omitempty,date_string,future_date"`
	Color     string   `json:"color" validate:"omitempty,hex_color"`
	LinkedIn  string   `json:"linkedin" validate:"omitempty,url,linkedin_url"`
	GitHub    string   `json:"github" validate:"omitempty,url,github_url"`
	Salary    *int     `json:"salary" validate:"omitempty,min=20000,max=1000000"`
	SkillList []string `json:"skill_list" validate:"omitempty,unique_fold"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestIntlPhone(t *testing.T) {
	v := newValidator(t)

	t.Run("accepts E.164 style numbers", func(t *testing.T) {
		assert.NoError(t, v.Struct(primitives{Phone: "+4915123456789"}))
		assert.NoError(t, v.Struct(primitives{Phone: "+12025550181"}))
	})

	t.Run("rejects missing plus, leading zero and bad lengths", func(t *testing.T) {
		assert.Error(t, v.Struct(primitives{Phone: "4915123456789"}))
		assert.Error(t, v.Struct(primitives{Phone: "+04915123456789"}))
		assert.Error(t, v.Struct(primitives{Phone: "+123456"}))
		assert.Error(t, v.Struct(primitives{Phone: "+1234567890123456"}))
	})
}

func TestDateString(t *testing.T) {
	v := newValidator(t)

	t.Run("accepts real calendar dates", func(t *testing.T) {
		assert.NoError(t, v.Struct(primitives{Date: "2023-02-28"}))
	})

	t.Run("rejects impossible and malformed dates", func(t *testing.T) {
		assert.Error(t, v.Struct(primitives{Date: "2023-02-31"}))
		assert.Error(t, v.Struct(primitives{Date: "2023-13-01"}))
		assert.Error(t, v.Struct(primitives{Date: "28-02-2023"}))
		assert.Error(t, v.Struct(primitives{Date: "2023/02/28"}))
	})
}

func TestDateBoundaries(t *testing.T) {
	v := newValidator(t)
	today := time.Now().UTC().Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	t.Run("past_date allows today but not tomorrow", func(t *testing.T) {
		assert.NoError(t, v.Struct(primitives{PastDate: today}))
		assert.NoError(t, v.Struct(primitives{PastDate: yesterday}))
		assert.Error(t, v.Struct(primitives{PastDate: tomorrow}))
	})

	t.Run("future_date allows today but not yesterday", func(t *testing.T) {
		assert.NoError(t, v.Struct(primitives{NextDate: today}))
		assert.NoError(t, v.Struct(primitives{NextDate: tomorrow}))
		assert.Error(t, v.Struct(primitives{NextDate: yesterday}))
	})
}

func TestHexColor(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(primitives{Color: "#1A2B3C"}))
	assert.NoError(t, v.Struct(primitives{Color: "#ffffff"}))
	assert.Error(t, v.Struct(primitives{Color: "1A2B3C"}))
	assert.Error(t, v.Struct(primitives{Color: "#1A2B3"}))
	assert.Error(t, v.Struct(primitives{Color: "#GGGGGG"}))
}

func TestDomainRestrictedURLs(t *testing.T) {
	v := newValidator(t)

	t.Run("linkedin", func(t *testing.T) {
		assert.NoError(t, v.Struct(primitives{LinkedIn: "https://www.linkedin.com/in/jane-doe"}))
		assert.Error(t, v.Struct(primitives{LinkedIn: "https://example.com/in/jane-doe"}))
		assert.Error(t, v.Struct(primitives{LinkedIn: "https://evillinkedin.com/in/jane"}))
	})

	t.Run("github", func(t *testing.T) {
		assert.NoError(t, v.Struct(primitives{GitHub: "https://github.com/janedoe"}))
		assert.Error(t, v.Struct(primitives{GitHub: "https://gitlab.com/janedoe"}))
	})
}

func TestUniqueFold(t *testing.T) {
	v := newValidator(t)

	t.Run("rejects case-insensitive duplicates", func(t *testing.T) {
		assert.Error(t, v.Struct(primitives{SkillList: []string{"React", "react", "Node"}}))
		assert.Error(t, v.Struct(primitives{SkillList: []string{"Go", " go "}}))
	})

	t.Run("accepts distinct entries", func(t *testing.T) {
		assert.NoError(t, v.Struct(primitives{SkillList: []string{"React", "Node"}}))
	})
}
