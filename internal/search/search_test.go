package search

import (
	"testing"

	"github.com/jonathan/job-board/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func privateJob(company, title string, locations ...string) *types.PrivateJob {
	j := types.NewPrivateJob()
	j.CompanyName = company
	j.JobTitle = title
	j.JobLocation = locations
	return j
}

func governmentJob(department, title string, locations ...string) *types.GovernmentJob {
	j := types.NewGovernmentJob()
	j.NameOfDepartment = department
	j.JobTitle = title
	j.JobLocation = locations
	return j
}

func TestMatches_PrivateFields(t *testing.T) {
	job := privateJob("Acme Corp", "Backend Engineer", "Delhi")
	job.Industry = "Fintech"
	job.JobType = "Full-time"
	job.Eligibility = []string{"B.Tech in CSE"}
	job.SkillsRequired = []string{"Golang", "PostgreSQL"}
	job.Experience = []string{"5 years of Kubernetes"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "company name", query: "acme", want: true},
		{name: "industry", query: "FINTECH", want: true},
		{name: "title", query: "backend", want: true},
		{name: "job type", query: "full-time", want: true},
		{name: "eligibility element", query: "b.tech", want: true},
		{name: "skills element", query: "postgres", want: true},
		{name: "query is trimmed", query: "  golang  ", want: true},
		{name: "experience is not searched for private jobs", query: "kubernetes", want: false},
		{name: "no field matches", query: "nurse", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(job, tt.query, ""))
		})
	}
}

func TestMatches_GovernmentFields(t *testing.T) {
	job := governmentJob("Indian Railways", "Station Master", "Mumbai")
	job.Eligibility = []string{"Graduate"}
	job.Experience = []string{"2 years in operations"}
	job.JobType = "Permanent"

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "department", query: "railways", want: true},
		{name: "title", query: "station", want: true},
		{name: "eligibility element", query: "graduate", want: true},
		{name: "experience element", query: "operations", want: true},
		{name: "job type is not searched for government jobs", query: "permanent", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(job, tt.query, ""))
		})
	}
}

func TestMatches_AbsentFieldsNeverMatch(t *testing.T) {
	job := types.NewPrivateJob()
	job.JobTitle = "Engineer"

	assert.False(t, Matches(job, "fintech", ""))
	assert.False(t, Matches(nil, "engineer", ""))

	var nilPrivate *types.PrivateJob
	assert.False(t, Matches(nilPrivate, "engineer", ""))
}

func TestMatches_Location(t *testing.T) {
	job := privateJob("Acme", "Engineer", "New Delhi", "Bengaluru")

	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{name: "empty location matches", location: "", want: true},
		{name: "exact element", location: "bengaluru", want: true},
		{name: "case-insensitive", location: "NEW DELHI", want: true},
		{name: "substring is not enough", location: "delhi", want: false},
		{name: "unknown", location: "mumbai", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(job, "engineer", tt.location))
		})
	}

	noLocations := governmentJob("Railways", "Clerk")
	assert.True(t, Matches(noLocations, "clerk", ""))
	assert.False(t, Matches(noLocations, "clerk", "delhi"))
}

func TestMatches_EmptyLocationDependsOnlyOnText(t *testing.T) {
	jobs := []types.Job{
		privateJob("Acme", "Engineer", "Delhi"),
		privateJob("Globex", "Designer"),
		governmentJob("Postal Department", "Sorter", "Chennai"),
	}
	queries := []string{"acme", "designer", "postal", "nothing", "e"}

	for _, job := range jobs {
		for _, q := range queries {
			assert.Equal(t, matchesText(job, normalizeQuery(q)), Matches(job, q, ""),
				"job %q query %q", job.Base().JobTitle, q)
		}
	}
}

func TestMatches_TitleSubstringAlwaysMatches(t *testing.T) {
	jobs := []types.Job{
		privateJob("Acme", "Senior Data Engineer"),
		governmentJob("Revenue", "Senior Data Engineer"),
	}
	for _, job := range jobs {
		title := job.Base().JobTitle
		for i := 0; i < len(title); i++ {
			for k := i; k <= len(title); k++ {
				q := title[i:k]
				assert.True(t, Matches(job, q, ""), "query %q", q)
			}
		}
	}
}

func TestSearch_EmptyQueryReturnsNothing(t *testing.T) {
	private := []*types.PrivateJob{privateJob("Acme", "Engineer", "Delhi")}
	government := []*types.GovernmentJob{governmentJob("Railways", "Clerk", "Delhi")}

	for _, q := range []string{"", "   ", "\t"} {
		for _, loc := range []string{"", "delhi", "mumbai"} {
			got := Search(private, government, q, loc)
			require.NotNil(t, got)
			assert.Empty(t, got, "query %q location %q", q, loc)
		}
	}
}

func TestSearch_PrivateBeforeGovernmentInInputOrder(t *testing.T) {
	p1 := privateJob("Acme", "Engineer")
	p2 := privateJob("Globex", "Support")
	p3 := privateJob("Initech", "Senior Engineer")
	g1 := governmentJob("Railways", "Engineer Grade II")
	g2 := governmentJob("Revenue", "Clerk")
	g3 := governmentJob("Defence", "Engineer")

	got := Search(
		[]*types.PrivateJob{p1, p2, p3},
		[]*types.GovernmentJob{g1, g2, g3},
		"engineer", "",
	)

	require.Len(t, got, 4)
	assert.Same(t, p1, got[0])
	assert.Same(t, p3, got[1])
	assert.Same(t, g1, got[2])
	assert.Same(t, g3, got[3])
}

func TestSearch_DoesNotMutateInputs(t *testing.T) {
	p := privateJob("Acme", "Engineer", "Delhi")
	private := []*types.PrivateJob{p}

	_ = Search(private, nil, "ACME", "DELHI")

	assert.Equal(t, "Acme", p.CompanyName)
	assert.Equal(t, []string{"Delhi"}, p.JobLocation)
	assert.Same(t, p, private[0])
}

func TestSearch_AcmeScenario(t *testing.T) {
	p := privateJob("Acme", "Engineer", "Delhi")
	private := []*types.PrivateJob{p}

	got := Search(private, nil, "acme", "delhi")
	require.Len(t, got, 1)
	assert.Same(t, p, got[0])

	assert.Empty(t, Search(private, nil, "acme", "mumbai"))
}

func TestSearch_SkipsNilEntries(t *testing.T) {
	got := Search([]*types.PrivateJob{nil, privateJob("Acme", "Engineer")}, []*types.GovernmentJob{nil}, "acme", "")
	assert.Len(t, got, 1)
}

func TestIT(t *testing.T) {
	byIndustry := privateJob("Acme", "Engineer")
	byIndustry.Industry = "IT"
	byDepartment := privateJob("Globex", "Analyst")
	byDepartment.DepartmentName = "it"
	other := privateJob("Initech", "Accountant")
	other.Industry = "Finance"
	partial := privateJob("Umbrella", "Auditor")
	partial.Industry = "IT Services"

	got := IT([]*types.PrivateJob{byIndustry, other, nil, byDepartment, partial})

	require.Len(t, got, 2)
	assert.Same(t, byIndustry, got[0])
	assert.Same(t, byDepartment, got[1])
	assert.NotNil(t, IT(nil))
}
