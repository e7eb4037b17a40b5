package extraction

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/job-board/internal/types"
)

// Draft is an unvalidated job record freshly extracted from generated text.
type Draft map[string]any

// Category returns the variant the draft should be routed to.
//
// The jobCategory tag wins when it names a known category. Drafts without a
// usable tag fall back to the legacy rule: the serialized draft mentioning
// "Private" anywhere routes to Private, everything else to Government.
func (d Draft) Category() types.Category {
	if tag, ok := d["jobCategory"].(string); ok {
		if c, err := types.ParseCategory(tag); err == nil {
			return c
		}
	}
	data, err := json.Marshal(d)
	if err == nil && strings.Contains(string(data), string(types.CategoryPrivate)) {
		return types.CategoryPrivate
	}
	return types.CategoryGovernment
}

// listFields are the array-valued job fields. Generated drafts sometimes
// collapse a single entry into a bare string.
var listFields = map[string]bool{
	"eligibility":         true,
	"experience":          true,
	"skillsRequired":      true,
	"jobLocation":         true,
	"reservationCategory": true,
	"applicationFee":      true,
	"selectionProcess":    true,
}

// ToJob decodes the draft into the typed record of its category for form pre-fill.
// Empty strings and nulls are treated as absent, numeric strings are accepted
// for vacancyCount and a bare string in a list field becomes a one-entry list. The result is not validated.
func (d Draft) ToJob() (types.Job, error) {
	clean := d.sanitized()

	data, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}

	var job types.Job
	switch d.Category() {
	case types.CategoryPrivate:
		job = types.NewPrivateJob()
	default:
		job = types.NewGovernmentJob()
	}
	if err := json.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("draft does not fit the %s job shape: %w", job.Category(), err)
	}
	types.NormalizeCategory(job)
	job.Base().ID = ""
	return job, nil
}

func (d Draft) sanitized() map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(val) == "" {
				continue
			}
			if k == "vacancyCount" {
				n, err := strconv.Atoi(strings.TrimSpace(val))
				if err != nil {
					continue
				}
				out[k] = n
				continue
			}
			if listFields[k] {
				out[k] = []any{val}
				continue
			}
		case []any:
			if len(val) == 0 {
				continue
			}
		}
		out[k] = v
	}
	return out
}
