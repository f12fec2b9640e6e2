package calculator

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
)

// Report is a serializable snapshot of a Calculator.
type Report struct {
	Name         string   `json:"name" jsonschema:"description=Student name as given"`
	Grades       []Grade  `json:"grades" validate:"dive,grade"`
	GPA          float64  `json:"gpa" validate:"gte=-1,lte=4" jsonschema:"minimum=-1,maximum=4"`
	Announcement string   `json:"announcement" validate:"required"`
	Rejected     []string `json:"rejected,omitempty" jsonschema:"description=Grades left out of the average"`
	Zeroed       []string `json:"zeroed,omitempty" jsonschema:"description=Unrecognized grades averaged as 0.0"`
}

// validate is the shared validator instance used across the package.
var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("grade", validateGrade); err != nil {
		panic(fmt.Sprintf("failed to register grade validator: %v", err))
	}
}

// validateGrade accepts Grade and string fields whose value is on the grade scale.
func validateGrade(fl validator.FieldLevel) bool {
	return IsGrade(fl.Field().String())
}

// JSONSchema describes a Grade as an enum over the grade scale.
func (Grade) JSONSchema() *jsonschema.Schema {
	enum := make([]any, len(scaleOrder))
	for i, g := range scaleOrder {
		enum[i] = string(g)
	}
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        enum,
		Description: "Letter grade",
	}
}

// Report returns a snapshot of the calculator's result.
func (c *Calculator) Report() Report {
	r := Report{
		Name:         c.name,
		Grades:       c.Grades(),
		GPA:          c.gpa,
		Announcement: c.Announcement(),
	}
	for _, d := range c.diagnostics {
		tok := fmt.Sprintf("%v", d.Token)
		if d.Zeroed {
			r.Zeroed = append(r.Zeroed, tok)
			continue
		}
		r.Rejected = append(r.Rejected, tok)
	}
	return r
}

// ValidateReport checks r against its struct tags.
func ValidateReport(r *Report) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid report: %w", err)
	}
	return nil
}

// ReportSchema returns the JSON Schema describing Report.
func ReportSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Report{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate report schema: %w", err)
	}
	return data, nil
}
