package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Refinement is a cross-field check evaluated only after every
// structural check on the input passed. Check returns true when the
// fields are mutually consistent; on false the refinement contributes
// exactly one error, bound to Field.
type Refinement struct {
	Field   string
	Code    string
	Message string
	Check   func() bool
}

// Refinable is implemented by input types that carry cross-field rules
// on top of their struct tags.
type Refinable interface {
	Refinements() []Refinement
}

// Engine runs the full rule set for an input: per-field structural
// validation first (collecting every failure, no fail-fast), then the
// input's ordered refinement list. Engines are stateless and safe for
// concurrent use.
type Engine struct {
	validate *validator.Validate
}

func NewEngine() *Engine {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	RegisterValidators(v)
	return &Engine{validate: v}
}

// Validate returns the complete error list for the input, or nil when
// the input is admissible. Refinements never run while structural
// errors exist, so they may assume individually valid fields.
func (e *Engine) Validate(in any) []FieldError {
	if err := e.validate.Struct(in); err != nil {
		return translateErrors(err)
	}

	r, ok := in.(Refinable)
	if !ok {
		return nil
	}

	var errs []FieldError
	for _, ref := range r.Refinements() {
		if !ref.Check() {
			errs = append(errs, FieldError{Field: ref.Field, Message: ref.Message, Code: ref.Code})
		}
	}
	return errs
}

// jsonTagName makes validator report fields by their JSON names so
// error paths match the request body shape.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
