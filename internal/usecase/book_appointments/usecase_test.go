package book_appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubTime struct{ now time.Time }

func (s stubTime) Now() time.Time { return s.now }

// fakeApptRepo имитирует хранилище записей в памяти
type fakeApptRepo struct {
	appointments []*domain.Appointment
	nextID       int64

	// competitor добавляется в хранилище после первого Create, имитируя
	// конкурирующее бронирование между транзакциями блока
	competitor *domain.Appointment
	creates    int
}

func (f *fakeApptRepo) GetOccupyingByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, len(f.appointments))
	copy(out, f.appointments)
	return out, nil
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	appt.ID = f.nextID
	f.appointments = append(f.appointments, appt)

	f.creates++
	if f.creates == 1 && f.competitor != nil {
		f.appointments = append(f.appointments, f.competitor)
	}

	return appt, nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.ServiceItem
	stylists []*domain.Stylist
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, ids []int64) ([]*domain.ServiceItem, error) {
	out := make([]*domain.ServiceItem, 0, len(ids))
	for _, id := range ids {
		svc, ok := f.services[id]
		if !ok {
			return nil, errServiceMissing
		}
		out = append(out, svc)
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetActiveStylists(_ context.Context) ([]*domain.Stylist, error) {
	return f.stylists, nil
}

func (f *fakeCatalogRepo) GetStylistByID(_ context.Context, id int64) (*domain.Stylist, error) {
	for _, st := range f.stylists {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, errStylistMissing
}

var (
	errServiceMissing = assert.AnError
	errStylistMissing = assert.AnError
)

// passthroughTx выполняет функцию без настоящей транзакции
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testHours(t *testing.T) domain.OperatingHours {
	t.Helper()
	h, err := domain.NewOperatingHours(domain.DefaultOpenTick, domain.DefaultCloseTick, domain.DefaultSlotGranularityMinutes)
	require.NoError(t, err)
	return h
}

func testDate() time.Time {
	return time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(t *testing.T, appts *fakeApptRepo, catalog *fakeCatalogRepo) *UseCase {
	t.Helper()
	uc := NewUseCase(appts, catalog, passthroughTx{}, testHours(t), nopLogger{})
	uc.timeProvider = stubTime{now: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func tick(t *testing.T, s string) domain.Tick {
	t.Helper()
	tk, err := domain.ParseTick(s)
	require.NoError(t, err)
	return tk
}

func defaultCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		services: map[int64]*domain.ServiceItem{
			1: {ID: 1, Name: "Haircut", DurationMinutes: 30, Price: 500, Active: true},
			2: {ID: 2, Name: "Coloring", DurationMinutes: 60, Price: 1500, Active: true},
		},
		stylists: []*domain.Stylist{
			{ID: 10, Name: "Asha", Active: true},
			{ID: 11, Name: "Meera", Active: true},
		},
	}
}

func TestExecute_StacksServicesSequentially(t *testing.T) {
	appts := &fakeApptRepo{}
	uc := newTestUseCase(t, appts, defaultCatalog())

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  tick(t, "10:00"),
		Scope:      domain.SpecificStylist(10),
		ServiceIDs: []int64{1, 2},
	})

	require.NoError(t, err)
	require.Len(t, resp.Created, 2)

	assert.Equal(t, tick(t, "10:00"), resp.Created[0].StartTime)
	assert.Equal(t, tick(t, "10:30"), resp.Created[1].StartTime, "second service starts after the first service's chunks")
	assert.Equal(t, "BOOKED", resp.Created[0].Status)
	assert.Equal(t, 2000.0, resp.TotalAmount)

	for _, c := range resp.Created {
		require.NotNil(t, c.StylistID)
		assert.Equal(t, int64(10), *c.StylistID)
	}
}

func TestExecute_OutOfHours(t *testing.T) {
	uc := newTestUseCase(t, &fakeApptRepo{}, defaultCatalog())

	// 20:30 + 90 minutes spills past 21:00 closing.
	_, err := uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  tick(t, "20:30"),
		Scope:      domain.SpecificStylist(10),
		ServiceIDs: []int64{1, 2},
	})
	assert.ErrorIs(t, err, ErrOutOfHours)

	// Off-grid start is a bounds violation too, not an occupancy problem.
	_, err = uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  domain.Tick(550),
		Scope:      domain.SpecificStylist(10),
		ServiceIDs: []int64{1},
	})
	assert.ErrorIs(t, err, ErrOutOfHours)
}

func TestExecute_StaleSlot(t *testing.T) {
	appts := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{
				ID:              100,
				StylistID:       ptr.Ptr(int64(10)),
				StartTick:       tick(t, "10:00"),
				DurationMinutes: 30,
				Status:          domain.StatusConfirmed,
			},
		},
		nextID: 100,
	}
	uc := newTestUseCase(t, appts, defaultCatalog())

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  tick(t, "10:00"),
		Scope:      domain.SpecificStylist(10),
		ServiceIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrStaleSlot)
	assert.Nil(t, resp)
	assert.Equal(t, 0, appts.creates, "stale pre-check must reject before any insert")
}

func TestExecute_PartialFailureKeepsCreated(t *testing.T) {
	appts := &fakeApptRepo{
		// Конкурент занимает 10:30 у того же мастера сразу после первой вставки
		competitor: &domain.Appointment{
			ID:              999,
			StylistID:       ptr.Ptr(int64(10)),
			StartTick:       tick(t, "10:30"),
			DurationMinutes: 30,
			Status:          domain.StatusBooked,
		},
	}
	uc := newTestUseCase(t, appts, defaultCatalog())

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  tick(t, "10:00"),
		Scope:      domain.SpecificStylist(10),
		ServiceIDs: []int64{1, 2},
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	require.NotNil(t, resp, "partial result must be surfaced alongside the error")
	require.Len(t, resp.Created, 1)
	assert.Equal(t, int64(1), resp.Created[0].ServiceID)
}

func TestExecute_AnyScopePicksFreeStylist(t *testing.T) {
	appts := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{
				ID:              100,
				StylistID:       ptr.Ptr(int64(10)),
				StartTick:       tick(t, "10:00"),
				DurationMinutes: 60,
				Status:          domain.StatusBooked,
			},
		},
		nextID: 100,
	}
	uc := newTestUseCase(t, appts, defaultCatalog())

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  tick(t, "10:00"),
		Scope:      domain.AnyStylist(),
		ServiceIDs: []int64{1},
	})

	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	require.NotNil(t, resp.Created[0].StylistID)
	assert.Equal(t, int64(11), *resp.Created[0].StylistID, "busy stylist is skipped")
}

func TestExecute_AnyScopeAllBusy(t *testing.T) {
	appts := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{StylistID: ptr.Ptr(int64(10)), StartTick: tick(t, "10:00"), DurationMinutes: 30, Status: domain.StatusBooked},
			{StylistID: ptr.Ptr(int64(11)), StartTick: tick(t, "10:00"), DurationMinutes: 30, Status: domain.StatusBooked},
		},
	}
	uc := newTestUseCase(t, appts, defaultCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  tick(t, "10:00"),
		Scope:      domain.AnyStylist(),
		ServiceIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrStaleSlot)
}

func TestExecute_UnassignedAppointmentBlocksEveryone(t *testing.T) {
	appts := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{StylistID: nil, StartTick: tick(t, "10:00"), DurationMinutes: 30, Status: domain.StatusBooked},
		},
	}
	uc := newTestUseCase(t, appts, defaultCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  tick(t, "10:00"),
		Scope:      domain.AnyStylist(),
		ServiceIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrStaleSlot)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(t, &fakeApptRepo{}, defaultCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       testDate(),
		StartTick:  tick(t, "10:00"),
		Scope:      domain.AnyStylist(),
		ServiceIDs: nil,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		UserID:     7,
		Date:       time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC),
		StartTick:  tick(t, "10:00"),
		Scope:      domain.AnyStylist(),
		ServiceIDs: []int64{1},
	})
	assert.ErrorIs(t, err, ErrDateInPast)
}
