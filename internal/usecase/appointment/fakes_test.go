package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-api/internal/domain"
	apdomain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// serialTx runs every transaction under one mutex, which is the strongest
// isolation a store can offer.
type serialTx struct {
	mu sync.Mutex
}

func (t *serialTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

type memRepo struct {
	mu            sync.Mutex
	professionals map[string]*models.Professional
	users         map[string]*models.User
	availability  []models.Availability
	appointments  map[string]*models.Appointment

	calls   int
	failErr error

	// afterGet runs once GetAppointment has released the lock.
	afterGet func()
}

func newMemRepo() *memRepo {
	return &memRepo{
		professionals: map[string]*models.Professional{},
		users:         map[string]*models.User{},
		appointments:  map[string]*models.Appointment{},
	}
}

func (r *memRepo) addUser(name, role string) *models.User {
	u := &models.User{ID: uuid.NewString(), Name: name, Email: name + "@example.com", Role: role}
	r.users[u.ID] = u
	return u
}

func (r *memRepo) addProfessional(active bool) *models.Professional {
	u := r.addUser("pro", models.RoleProfessional)
	p := &models.Professional{ID: uuid.NewString(), UserID: u.ID, User: u, Specialty: "Cardiology", Active: active}
	r.professionals[p.ID] = p
	return p
}

func (r *memRepo) addAvailability(profID string, day int, start, end string) {
	r.availability = append(r.availability, models.Availability{
		ID: uuid.NewString(), ProfessionalID: profID, DayOfWeek: day, StartTime: start, EndTime: end,
	})
}

func (r *memRepo) addAppointment(ap models.Appointment) *models.Appointment {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	if ap.Status == "" {
		ap.Status = string(apdomain.StatusConfirmed)
	}
	r.appointments[ap.ID] = &ap
	return &ap
}

func (r *memRepo) touch() error {
	r.calls++
	return r.failErr
}

func (r *memRepo) GetProfessionalByID(_ context.Context, id string) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return nil, err
	}
	p, ok := r.professionals[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) GetProfessionalByUserID(_ context.Context, userID string) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return nil, err
	}
	for _, p := range r.professionals {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) LockProfessional(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return err
	}
	if _, ok := r.professionals[id]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (r *memRepo) ListAvailabilityForDay(_ context.Context, professionalID string, day int) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return nil, err
	}
	var out []models.Availability
	for _, a := range r.availability {
		if a.ProfessionalID == professionalID && a.DayOfWeek == day {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memRepo) ListConfirmedForDate(_ context.Context, professionalID string, date time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return nil, err
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ProfessionalID == professionalID &&
			ap.Date.Equal(date) &&
			ap.Status == string(apdomain.StatusConfirmed) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return err
	}
	ap.ID = uuid.NewString()
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *memRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	ap, err := r.getAppointment(id)
	if r.afterGet != nil {
		r.afterGet()
	}
	return ap, err
}

func (r *memRepo) getAppointment(id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return nil, err
	}
	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	cp.Professional = r.professionals[ap.ProfessionalID]
	return &cp, nil
}

func (r *memRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return err
	}
	stored, ok := r.appointments[ap.ID]
	if !ok || stored.Status != string(apdomain.StatusConfirmed) {
		return apdomain.ErrStatusChanged
	}
	cp := *ap
	cp.Professional = nil
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *memRepo) sorted(keep func(*models.Appointment) bool) []models.Appointment {
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if keep(ap) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (r *memRepo) ListForProfessional(_ context.Context, professionalID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return nil, err
	}
	return r.sorted(func(ap *models.Appointment) bool { return ap.ProfessionalID == professionalID }), nil
}

func (r *memRepo) ListForClient(_ context.Context, clientID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.touch(); err != nil {
		return nil, err
	}
	return r.sorted(func(ap *models.Appointment) bool { return ap.ClientID == clientID }), nil
}

var _ apdomain.Repository = (*memRepo)(nil)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
