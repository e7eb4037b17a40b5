package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-board/internal/prompts"
)

const promptFile = "jobs.json"

// ExtractionSchema describes the JSON object the model is asked to produce.
type ExtractionSchema struct {
	Name        string        // Schema name, e.g. "PrivateJob"
	Description string        // Preamble describing the extraction task
	Fields      []SchemaField // Expected output fields, in prompt order
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name     string // JSON field name
	Type     string // Type hint shown to the model
	Required bool
}

// BuildJobPrompt constructs the drafting prompt for a job category.
// category is written verbatim into the jobCategory instruction.
func BuildJobPrompt(schema ExtractionSchema, category, jobData string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("### Job data\n\"\"\"\n")
	sb.WriteString(jobData)
	sb.WriteString("\n\"\"\"\n\n")

	sb.WriteString("### ")
	sb.WriteString(schema.Name)
	sb.WriteString(" schema\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		if !field.Required {
			typeHint += " (optional)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %q", field.Name, typeHint))
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("### Expected output\n")
	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "expected-output"), map[string]string{
		"Category": category,
	}))

	return sb.String()
}

func describe(focusKey string) string {
	return prompts.MustGet(promptFile, "job-preamble") + "\n" + prompts.MustGet(promptFile, focusKey)
}

func commonFields() []SchemaField {
	return []SchemaField{
		{Name: "jobTitle", Required: true},
		{Name: "jobType", Required: true},
		{Name: "applicationStartingDate", Type: "date"},
		{Name: "applicationEndDate", Type: "date"},
		{Name: "eligibility", Type: "array of strings"},
		{Name: "education", Required: true},
		{Name: "experience", Type: "array of strings"},
		{Name: "applicationLink", Type: "string URL"},
		{Name: "contactEmail", Type: "string email"},
		{Name: "contactPhone"},
		{Name: "source"},
		{Name: "informationLink", Type: "string URL", Required: true},
		{Name: "jobCategory", Required: true},
	}
}

// PrivateJobSchema returns the extraction schema for company postings.
func PrivateJobSchema() ExtractionSchema {
	fields := []SchemaField{
		{Name: "companyName", Required: true},
		{Name: "departmentName"},
		{Name: "vacancyCount", Type: "number"},
		{Name: "skillsRequired", Type: "array of strings"},
		{Name: "salaryRange"},
		{Name: "jobLocation", Type: "array of strings", Required: true},
		{Name: "companyWebsite", Type: "string URL"},
		{Name: "industry"},
	}
	return ExtractionSchema{
		Name:        "Private Job",
		Description: describe("private-focus"),
		Fields:      append(commonFields(), fields...),
	}
}

// GovernmentJobSchema returns the extraction schema for government postings.
func GovernmentJobSchema() ExtractionSchema {
	fields := []SchemaField{
		{Name: "nameOfDepartment", Required: true},
		{Name: "vacancyCount", Type: "number", Required: true},
		{Name: "ageLimit", Required: true},
		{Name: "reservationCategory", Type: "array of strings"},
		{Name: "applicationFee", Type: "array of strings"},
		{Name: "selectionProcess", Type: "array of strings"},
		{Name: "examDate", Type: "date"},
		{Name: "getAdmitCardDate", Type: "date"},
		{Name: "getAdmitCardLastDate", Type: "date"},
		{Name: "resultDate", Type: "date"},
		{Name: "interviewDate", Type: "date"},
		{Name: "governmentType", Required: true},
		{Name: "payGradeRange"},
		{Name: "salaryRange"},
		{Name: "jobLocation", Type: "array of strings"},
		{Name: "address"},
		{Name: "group"},
	}
	return ExtractionSchema{
		Name:        "Government Job",
		Description: describe("government-focus"),
		Fields:      append(commonFields(), fields...),
	}
}
