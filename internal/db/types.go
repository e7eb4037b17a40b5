package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-board/internal/types"
)

// AdminAccount is an admin row including its password hash.
type AdminAccount struct {
	types.Admin
	PasswordHash string `json:"-"` // Never serialize to JSON
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	switch source := src.(type) {
	case nil:
		*a = []string{}
		return nil
	case []byte:
		return json.Unmarshal(source, a)
	case string:
		return json.Unmarshal([]byte(source), a)
	default:
		return errors.New("type assertion .([]byte) failed")
	}
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(a))
}

// dateArg converts an optional calendar date into a DATE parameter.
func dateArg(d *types.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Time
}

func toDate(t *time.Time) *types.Date {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	return types.NewDate(y, m, d)
}

func toTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// parseID reports whether s is a well-formed record identifier.
func parseID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
