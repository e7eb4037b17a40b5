package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-board/internal/observability"
	"github.com/jonathan/job-board/internal/server"
	"github.com/jonathan/job-board/internal/types"
	"github.com/spf13/cobra"
)

var (
	searchQuery    string
	searchLocation string
	searchJSON     bool
	searchIT       bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search stored jobs by text and location",
	Long: `Search private and government jobs the same way the home page does.
The query is matched case-insensitively against titles, organisations, industry,
eligibility and skills; --location must equal one of a job's locations.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text query")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Exact location (case-insensitive)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print results as JSON")
	searchCmd.Flags().BoolVar(&searchIT, "it", false, "List IT jobs instead of searching")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if !searchIT && strings.TrimSpace(searchQuery) == "" {
		return fmt.Errorf("--query is required")
	}

	database, err := connectDB(cmd.Context())
	if err != nil {
		return err
	}
	defer database.Close()

	jobs := server.NewJobService(database, logger)

	var results []types.Job
	if searchIT {
		it, err := jobs.IT(cmd.Context())
		if err != nil {
			return err
		}
		for _, j := range it {
			results = append(results, j)
		}
	} else {
		results, err = jobs.Search(cmd.Context(), searchQuery, searchLocation)
		if err != nil {
			return err
		}
	}

	if verbose && !searchJSON && len(results) > 0 {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		for _, job := range results {
			printer.PrintJob(job)
		}
		return nil
	}
	return printJobs(cmd.OutOrStdout(), results, searchJSON)
}

// printJobs writes one line per job, or the jobs as a JSON array.
func printJobs(w io.Writer, jobs []types.Job, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if jobs == nil {
			jobs = []types.Job{}
		}
		return enc.Encode(jobs)
	}

	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs found")
		return nil
	}
	for _, job := range jobs {
		fmt.Fprintln(w, summarize(job))
	}
	return nil
}

func summarize(job types.Job) string {
	base := job.Base()
	org := ""
	switch v := job.(type) {
	case *types.PrivateJob:
		org = v.CompanyName
	case *types.GovernmentJob:
		org = v.NameOfDepartment
	}

	line := fmt.Sprintf("[%s] %s | %s", job.Category(), base.JobTitle, org)
	if locs := types.Locations(job); len(locs) > 0 {
		line += " | " + strings.Join(locs, ", ")
	}
	if base.ID != "" {
		line += " (" + base.ID + ")"
	}
	return line
}
