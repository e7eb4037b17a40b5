package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-board/internal/config"
	"github.com/jonathan/job-board/internal/db"
	"github.com/jonathan/job-board/internal/extraction"
	"github.com/jonathan/job-board/internal/types"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store. Records are kept in insertion order and
// listed newest first, mirroring the updated_at ordering of the database.
type fakeStore struct {
	mu         sync.Mutex
	private    []*types.PrivateJob
	government []*types.GovernmentJob
	admins     map[string]*db.AdminAccount
	clock      time.Time

	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		admins: make(map[string]*db.AdminAccount),
		clock:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) tick() *time.Time {
	f.clock = f.clock.Add(time.Second)
	t := f.clock
	return &t
}

func (f *fakeStore) CreatePrivateJob(_ context.Context, job *types.PrivateJob) (*types.PrivateJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *job
	stored.ID = uuid.NewString()
	stored.CreatedAt = f.tick()
	stored.UpdatedAt = stored.CreatedAt
	f.private = append(f.private, &stored)
	out := stored
	return &out, nil
}

func (f *fakeStore) FindPrivateDuplicate(_ context.Context, companyName, jobTitle string, vacancyCount *int) (*types.PrivateJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.private {
		sameCount := (j.VacancyCount == nil && vacancyCount == nil) ||
			(j.VacancyCount != nil && vacancyCount != nil && *j.VacancyCount == *vacancyCount)
		if j.CompanyName == companyName && j.JobTitle == jobTitle && sameCount {
			return j, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListPrivateJobs(_ context.Context, location string) ([]*types.PrivateJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	jobs := []*types.PrivateJob{}
	for _, j := range f.private {
		if location == "" || slices.Contains(j.JobLocation, location) {
			jobs = append(jobs, j)
		}
	}
	slices.SortStableFunc(jobs, func(a, b *types.PrivateJob) int { return b.UpdatedAt.Compare(*a.UpdatedAt) })
	return jobs, nil
}

func (f *fakeStore) GetPrivateJob(_ context.Context, id string) (*types.PrivateJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.private {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdatePrivateJob(_ context.Context, id string, job *types.PrivateJob) (*types.PrivateJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, j := range f.private {
		if j.ID == id {
			stored := *job
			stored.ID = id
			stored.CreatedAt = j.CreatedAt
			stored.UpdatedAt = f.tick()
			f.private[i] = &stored
			return &stored, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeStore) DeletePrivateJob(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, j := range f.private {
		if j.ID == id {
			f.private = slices.Delete(f.private, i, i+1)
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakeStore) DeleteAllPrivateJobs(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.private))
	f.private = nil
	return n, nil
}

func (f *fakeStore) CreateGovernmentJob(_ context.Context, job *types.GovernmentJob) (*types.GovernmentJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *job
	stored.ID = uuid.NewString()
	stored.CreatedAt = f.tick()
	stored.UpdatedAt = stored.CreatedAt
	f.government = append(f.government, &stored)
	out := stored
	return &out, nil
}

func (f *fakeStore) FindGovernmentDuplicate(_ context.Context, nameOfDepartment, jobTitle string, vacancyCount int) (*types.GovernmentJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.government {
		if j.NameOfDepartment == nameOfDepartment && j.JobTitle == jobTitle && j.VacancyCount == vacancyCount {
			return j, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListGovernmentJobs(_ context.Context, location string) ([]*types.GovernmentJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	jobs := []*types.GovernmentJob{}
	for _, j := range f.government {
		if location == "" || slices.Contains(j.JobLocation, location) {
			jobs = append(jobs, j)
		}
	}
	slices.SortStableFunc(jobs, func(a, b *types.GovernmentJob) int { return b.UpdatedAt.Compare(*a.UpdatedAt) })
	return jobs, nil
}

func (f *fakeStore) GetGovernmentJob(_ context.Context, id string) (*types.GovernmentJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.government {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateGovernmentJob(_ context.Context, id string, job *types.GovernmentJob) (*types.GovernmentJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, j := range f.government {
		if j.ID == id {
			stored := *job
			stored.ID = id
			stored.CreatedAt = j.CreatedAt
			stored.UpdatedAt = f.tick()
			f.government[i] = &stored
			return &stored, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeStore) DeleteGovernmentJob(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, j := range f.government {
		if j.ID == id {
			f.government = slices.Delete(f.government, i, i+1)
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakeStore) DeleteAllGovernmentJobs(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.government))
	f.government = nil
	return n, nil
}

func (f *fakeStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.admins[strings.ToLower(email)]
	return ok, nil
}

func (f *fakeStore) CreateAdmin(_ context.Context, email, passwordHash, userType string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.ToLower(email)
	if _, ok := f.admins[key]; ok {
		return uuid.Nil, errors.New("duplicate key value violates unique constraint")
	}
	id := uuid.New()
	f.admins[key] = &db.AdminAccount{
		Admin: types.Admin{
			ID:        id,
			Email:     email,
			UserType:  userType,
			CreatedAt: *f.tick(),
		},
		PasswordHash: passwordHash,
	}
	return id, nil
}

func (f *fakeStore) GetAdminByEmail(_ context.Context, email string) (*db.AdminAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.admins[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	out := *account
	return &out, nil
}

// fakeGenerator returns a canned draft result or error.
type fakeGenerator struct {
	result *extraction.Result
	err    error

	calls    int
	jobData  string
	category types.Category
}

func (g *fakeGenerator) Generate(_ context.Context, jobData string, category types.Category) (*extraction.Result, error) {
	g.calls++
	g.jobData = jobData
	g.category = category
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: 4}
}

// newTestServer builds a server over a fake store with rate limiting disabled.
func newTestServer(t *testing.T, store *fakeStore, generator DraftGenerator) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	return buildTestServer(t, store, generator)
}

func buildTestServer(t *testing.T, store *fakeStore, generator DraftGenerator) *Server {
	t.Helper()
	s, err := New(Config{
		Port:           0,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		JWT: &config.JWTConfig{
			Secret:          testJWTSecret,
			ExpirationHours: 1,
			Issuer:          config.DefaultJWTIssuer,
		},
		Password: testPasswordConfig(),
		Logger:   quietLogger(),
	}, store, generator)
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.jwtService.GenerateToken(uuid.New(), types.AdminUserType)
	require.NoError(t, err)
	return token
}
