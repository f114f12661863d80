package availability

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	avdomain "github.com/BruksfildServices01/agenda-api/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type serialTx struct{ mu sync.Mutex }

func (t *serialTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

type memRepo struct {
	mu            sync.Mutex
	professionals map[string]*models.Professional
	slots         map[string]models.Availability
}

func newMemRepo() *memRepo {
	return &memRepo{
		professionals: map[string]*models.Professional{},
		slots:         map[string]models.Availability{},
	}
}

func (r *memRepo) addProfessional(userID string) *models.Professional {
	p := &models.Professional{ID: uuid.NewString(), UserID: userID, Active: true}
	r.professionals[p.ID] = p
	return p
}

func (r *memRepo) GetProfessionalByID(_ context.Context, id string) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.professionals[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) GetProfessionalByUserID(_ context.Context, userID string) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.professionals {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) LockProfessional(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.professionals[id]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (r *memRepo) ListForDay(_ context.Context, professionalID string, day int) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Availability
	for _, a := range r.slots {
		if a.ProfessionalID == professionalID && a.DayOfWeek == day {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memRepo) ListForProfessional(_ context.Context, professionalID string) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Availability
	for _, a := range r.slots {
		if a.ProfessionalID == professionalID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *memRepo) Create(_ context.Context, a *models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.NewString()
	r.slots[a.ID] = *a
	return nil
}

func (r *memRepo) Get(_ context.Context, id string) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.slots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Professional = r.professionals[a.ProfessionalID]
	return &a, nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, id)
	return nil
}

var _ avdomain.Repository = (*memRepo)(nil)

func newPublish(repo *memRepo) *PublishAvailability {
	return NewPublishAvailability(repo, &serialTx{}, audit.Discard, zap.NewNop())
}

func TestPublish(t *testing.T) {
	repo := newMemRepo()
	prof := repo.addProfessional("pro-user")
	uc := newPublish(repo)
	ctx := context.Background()

	a, err := uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}, "pro-user")
	require.NoError(t, err)
	assert.Equal(t, prof.ID, a.ProfessionalID)
	assert.NotEmpty(t, a.ID)

	t.Run("adjacent windows are accepted", func(t *testing.T) {
		_, err := uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: "12:00", EndTime: "14:00"}, "pro-user")
		assert.NoError(t, err)
		_, err = uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"}, "pro-user")
		assert.NoError(t, err)
	})

	t.Run("overlapping windows are rejected", func(t *testing.T) {
		for _, w := range [][2]string{{"11:00", "13:00"}, {"09:00", "12:00"}, {"10:00", "10:30"}, {"07:00", "15:00"}} {
			_, err := uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: w[0], EndTime: w[1]}, "pro-user")
			assert.True(t, httperr.IsBusiness(err, "availability_overlap"), w)
		}
	})

	t.Run("other days are independent", func(t *testing.T) {
		_, err := uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"}, "pro-user")
		assert.NoError(t, err)
	})

	t.Run("other professionals are independent", func(t *testing.T) {
		repo.addProfessional("pro-user-2")
		_, err := uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}, "pro-user-2")
		assert.NoError(t, err)
	})
}

func TestPublishValidation(t *testing.T) {
	repo := newMemRepo()
	repo.addProfessional("pro-user")
	uc := newPublish(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"}, "pro-user")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))

	_, err = uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: "12:00", EndTime: "12:00"}, "pro-user")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))

	_, err = uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 7, StartTime: "09:00", EndTime: "12:00"}, "pro-user")
	assert.True(t, httperr.IsBusiness(err, "invalid_day_of_week"))

	_, err = uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: "9:00", EndTime: "12:00"}, "pro-user")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	_, err = uc.Execute(ctx, PublishAvailabilityInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}, "client-user")
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	assert.Empty(t, repo.slots)
}

func TestPublishConcurrentOverlap(t *testing.T) {
	repo := newMemRepo()
	repo.addProfessional("pro-user")
	uc := newPublish(repo)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, w := range [][2]string{{"09:00", "12:00"}, {"11:00", "14:00"}} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), PublishAvailabilityInput{DayOfWeek: 3, StartTime: w[0], EndTime: w[1]}, "pro-user")
		}()
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.True(t, httperr.IsBusiness(err, "availability_overlap"))
			failures++
		}
	}
	assert.Equal(t, 1, failures)
	assert.Len(t, repo.slots, 1)
}

func TestListAvailability(t *testing.T) {
	repo := newMemRepo()
	prof := repo.addProfessional("pro-user")
	publish := newPublish(repo)
	ctx := context.Background()

	for _, in := range []PublishAvailabilityInput{
		{DayOfWeek: 3, StartTime: "14:00", EndTime: "18:00"},
		{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00"},
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00"},
	} {
		_, err := publish.Execute(ctx, in, "pro-user")
		require.NoError(t, err)
	}

	uc := NewListAvailability(repo)

	got, err := uc.Execute(ctx, prof.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, [2]any{1, "08:00"}, [2]any{got[0].DayOfWeek, got[0].StartTime})
	assert.Equal(t, [2]any{1, "13:00"}, [2]any{got[1].DayOfWeek, got[1].StartTime})
	assert.Equal(t, [2]any{3, "14:00"}, [2]any{got[2].DayOfWeek, got[2].StartTime})

	_, err = uc.Execute(ctx, "missing")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))

	empty := repo.addProfessional("pro-user-2")
	got, err = uc.Execute(ctx, empty.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRetract(t *testing.T) {
	repo := newMemRepo()
	repo.addProfessional("pro-user")
	repo.addProfessional("pro-user-2")
	a, err := newPublish(repo).Execute(context.Background(),
		PublishAvailabilityInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}, "pro-user")
	require.NoError(t, err)

	uc := NewRetractAvailability(repo, audit.Discard)

	err = uc.Execute(context.Background(), "missing", "pro-user")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))

	err = uc.Execute(context.Background(), a.ID, "pro-user-2")
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
	assert.Len(t, repo.slots, 1)

	require.NoError(t, uc.Execute(context.Background(), a.ID, "pro-user"))
	assert.Empty(t, repo.slots)

	err = uc.Execute(context.Background(), a.ID, "pro-user")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}
