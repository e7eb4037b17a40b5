// Package types provides type definitions for structured data used throughout the job board.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// Category is the discriminant stored in the jobCategory field.
type Category string

// Supported job categories. Comparison is case-sensitive.
const (
	CategoryPrivate    Category = "Private"
	CategoryGovernment Category = "Government"
)

// ParseCategory returns the Category for s or an error if s is not a known category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryPrivate, CategoryGovernment:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown job category %q (want %q or %q)", s, CategoryPrivate, CategoryGovernment)
	}
}

// Job is a job posting of either variant. Only *PrivateJob and *GovernmentJob implement it.
type Job interface {
	// Category returns the variant tag. It is fixed by the concrete type.
	Category() Category
	// Base returns the fields shared by both variants.
	Base() *JobBase

	sealed()
}

// JobBase holds the fields common to both job variants.
type JobBase struct {
	ID                      string     `json:"_id,omitempty"`
	JobTitle                string     `json:"jobTitle" validate:"required"`
	JobType                 string     `json:"jobType" validate:"required"`
	ApplicationStartingDate *Date      `json:"applicationStartingDate,omitempty"`
	ApplicationEndDate      *Date      `json:"applicationEndDate,omitempty"`
	Eligibility             []string   `json:"eligibility,omitempty"`
	Education               string     `json:"education" validate:"required"`
	Experience              []string   `json:"experience,omitempty"`
	ApplicationLink         string     `json:"applicationLink,omitempty" validate:"omitempty,url"`
	ContactEmail            string     `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone            string     `json:"contactPhone,omitempty"`
	Source                  string     `json:"source,omitempty"`
	InformationLink         string     `json:"informationLink" validate:"required,url"`
	JobCategory             Category   `json:"jobCategory"`
	CreatedAt               *time.Time `json:"createdAt,omitempty"`
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// PrivateJob is a posting published by a company.
type PrivateJob struct {
	JobBase
	CompanyName    string   `json:"companyName" validate:"required"`
	DepartmentName string   `json:"departmentName,omitempty"`
	VacancyCount   *int     `json:"vacancyCount,omitempty" validate:"omitempty,min=0"`
	SkillsRequired []string `json:"skillsRequired,omitempty"`
	SalaryRange    string   `json:"salaryRange,omitempty"`
	CompanyWebsite string   `json:"companyWebsite,omitempty" validate:"omitempty,url"`
	Industry       string   `json:"industry,omitempty"`
	JobLocation    []string `json:"jobLocation" validate:"required,min=1"`
}

// GovernmentJob is a posting published by a government department.
type GovernmentJob struct {
	JobBase
	NameOfDepartment     string   `json:"nameOfDepartment" validate:"required"`
	VacancyCount         int      `json:"vacancyCount" validate:"required,min=1"`
	AgeLimit             string   `json:"ageLimit" validate:"required"`
	ReservationCategory  []string `json:"reservationCategory,omitempty"`
	ApplicationFee       []string `json:"applicationFee,omitempty"`
	SelectionProcess     []string `json:"selectionProcess,omitempty"`
	ExamDate             *Date    `json:"examDate,omitempty"`
	GetAdmitCardDate     *Date    `json:"getAdmitCardDate,omitempty"`
	GetAdmitCardLastDate *Date    `json:"getAdmitCardLastDate,omitempty"`
	ResultDate           *Date    `json:"resultDate,omitempty"`
	InterviewDate        *Date    `json:"interviewDate,omitempty"`
	GovernmentType       string   `json:"governmentType" validate:"required"`
	PayGradeRange        string   `json:"payGradeRange,omitempty"`
	SalaryRange          string   `json:"salaryRange,omitempty"`
	JobLocation          []string `json:"jobLocation,omitempty"`
	Address              string   `json:"address,omitempty"`
	Group                string   `json:"group,omitempty"`
}

// Category implements Job.
func (*PrivateJob) Category() Category { return CategoryPrivate }

// Base implements Job.
func (j *PrivateJob) Base() *JobBase { return &j.JobBase }

func (*PrivateJob) sealed() {}

// Category implements Job.
func (*GovernmentJob) Category() Category { return CategoryGovernment }

// Base implements Job.
func (j *GovernmentJob) Base() *JobBase { return &j.JobBase }

func (*GovernmentJob) sealed() {}

// Locations returns the jobLocation list of any variant.
func Locations(j Job) []string {
	switch v := j.(type) {
	case *PrivateJob:
		if v != nil {
			return v.JobLocation
		}
	case *GovernmentJob:
		if v != nil {
			return v.JobLocation
		}
	}
	return nil
}

// NewPrivateJob returns an empty private job with its discriminant set.
func NewPrivateJob() *PrivateJob {
	return &PrivateJob{JobBase: JobBase{JobCategory: CategoryPrivate}}
}

// NewGovernmentJob returns an empty government job with its discriminant set.
func NewGovernmentJob() *GovernmentJob {
	return &GovernmentJob{JobBase: JobBase{JobCategory: CategoryGovernment}}
}

// NormalizeCategory forces the jobCategory field to agree with the concrete type.
func NormalizeCategory(j Job) {
	j.Base().JobCategory = j.Category()
}

// HasCompanyName reports whether an untyped record carries a non-empty companyName.
func HasCompanyName(fields map[string]any) bool {
	s, ok := fields["companyName"].(string)
	return ok && s != ""
}

// HasDepartmentName reports whether an untyped record carries a non-empty nameOfDepartment.
func HasDepartmentName(fields map[string]any) bool {
	s, ok := fields["nameOfDepartment"].(string)
	return ok && s != ""
}
