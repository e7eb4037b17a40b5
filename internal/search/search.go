// Package search filters in-memory job snapshots by free text and location.
package search

import (
	"strings"

	"github.com/jonathan/job-board/internal/types"
)

// Matches reports whether job matches the query text and location.
//
// The query is lower-cased and trimmed, then tested as a substring of the
// searchable fields of the job's variant. The location, when non-empty, must
// equal one of the job's locations after lower-casing. An empty query matches
// every job; Search is responsible for the empty-query rule.
func Matches(job types.Job, queryText, queryLocation string) bool {
	if job == nil {
		return false
	}
	q := normalizeQuery(queryText)
	return matchesText(job, q) && matchesLocation(job, strings.ToLower(queryLocation))
}

// Search returns the private then government jobs matching the query, in input order.
// A blank query text yields no results regardless of location.
func Search(private []*types.PrivateJob, government []*types.GovernmentJob, queryText, queryLocation string) []types.Job {
	results := make([]types.Job, 0)
	q := normalizeQuery(queryText)
	if q == "" {
		return results
	}
	loc := strings.ToLower(queryLocation)

	for _, job := range private {
		if job != nil && matchesText(job, q) && matchesLocation(job, loc) {
			results = append(results, job)
		}
	}
	for _, job := range government {
		if job != nil && matchesText(job, q) && matchesLocation(job, loc) {
			results = append(results, job)
		}
	}
	return results
}

// IT returns the private jobs whose industry or department is "IT".
func IT(private []*types.PrivateJob) []*types.PrivateJob {
	results := make([]*types.PrivateJob, 0)
	for _, job := range private {
		if job == nil {
			continue
		}
		if strings.EqualFold(job.Industry, "it") || strings.EqualFold(job.DepartmentName, "it") {
			results = append(results, job)
		}
	}
	return results
}

func normalizeQuery(queryText string) string {
	return strings.TrimSpace(strings.ToLower(queryText))
}

// matchesText expects q already normalized.
func matchesText(job types.Job, q string) bool {
	switch v := job.(type) {
	case *types.PrivateJob:
		if v == nil {
			return false
		}
		return contains(v.CompanyName, q) ||
			contains(v.Industry, q) ||
			contains(v.JobTitle, q) ||
			contains(v.JobType, q) ||
			anyContains(v.Eligibility, q) ||
			anyContains(v.SkillsRequired, q)
	case *types.GovernmentJob:
		if v == nil {
			return false
		}
		return contains(v.NameOfDepartment, q) ||
			contains(v.JobTitle, q) ||
			anyContains(v.Eligibility, q) ||
			anyContains(v.Experience, q)
	default:
		return false
	}
}

// matchesLocation expects loc already lower-cased.
func matchesLocation(job types.Job, loc string) bool {
	if loc == "" {
		return true
	}
	for _, l := range types.Locations(job) {
		if strings.ToLower(l) == loc {
			return true
		}
	}
	return false
}

// contains treats an absent (empty) field as non-matching for any non-empty q.
func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}

func anyContains(fields []string, q string) bool {
	for _, f := range fields {
		if contains(f, q) {
			return true
		}
	}
	return false
}
