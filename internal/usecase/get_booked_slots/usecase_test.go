package get_booked_slots

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

type fakeApptRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeApptRepo) GetOccupyingByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeCatalogRepo struct {
	stylists []*domain.Stylist
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
	return nil, assert.AnError
}

func testHours(t *testing.T) domain.OperatingHours {
	t.Helper()
	h, err := domain.NewOperatingHours(domain.DefaultOpenTick, domain.DefaultCloseTick, domain.DefaultSlotGranularityMinutes)
	require.NoError(t, err)
	return h
}

func tick(t *testing.T, s string) domain.Tick {
	t.Helper()
	tk, err := domain.ParseTick(s)
	require.NoError(t, err)
	return tk
}

func testDate() time.Time {
	return time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
}

func TestExecute_SpecificStylist(t *testing.T) {
	appts := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{StylistID: ptr.Ptr(int64(10)), StartTick: tick(t, "10:00"), DurationMinutes: 60, Status: domain.StatusBooked},
			{StylistID: ptr.Ptr(int64(11)), StartTick: tick(t, "14:00"), DurationMinutes: 30, Status: domain.StatusBooked},
		},
	}
	catalog := &fakeCatalogRepo{stylists: []*domain.Stylist{
		{ID: 10, Name: "Asha", Active: true},
		{ID: 11, Name: "Meera", Active: true},
	}}
	uc := NewUseCase(appts, catalog, testHours(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:  testDate(),
		Scope: domain.SpecificStylist(10),
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.Tick{tick(t, "10:00"), tick(t, "10:30")}, resp.Slots,
		"other stylists' appointments do not show up in a specific scope")
}

func TestExecute_AnyScopeAggregatesByCapacity(t *testing.T) {
	appts := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{StylistID: ptr.Ptr(int64(10)), StartTick: tick(t, "10:00"), DurationMinutes: 30, Status: domain.StatusBooked},
			{StylistID: ptr.Ptr(int64(11)), StartTick: tick(t, "10:00"), DurationMinutes: 30, Status: domain.StatusBooked},
			{StylistID: ptr.Ptr(int64(10)), StartTick: tick(t, "12:00"), DurationMinutes: 30, Status: domain.StatusBooked},
		},
	}
	catalog := &fakeCatalogRepo{stylists: []*domain.Stylist{
		{ID: 10, Name: "Asha", Active: true},
		{ID: 11, Name: "Meera", Active: true},
	}}
	uc := NewUseCase(appts, catalog, testHours(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:  testDate(),
		Scope: domain.AnyStylist(),
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.Tick{tick(t, "10:00")}, resp.Slots,
		"12:00 keeps a free chair and stays bookable")
}

func TestExecute_InactiveStylistRejected(t *testing.T) {
	catalog := &fakeCatalogRepo{stylists: []*domain.Stylist{
		{ID: 10, Name: "Asha", Active: false},
	}}
	uc := NewUseCase(&fakeApptRepo{}, catalog, testHours(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:  testDate(),
		Scope: domain.SpecificStylist(10),
	})

	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestExecute_ValidationRejectsZeroDate(t *testing.T) {
	uc := NewUseCase(&fakeApptRepo{}, &fakeCatalogRepo{}, testHours(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Scope: domain.AnyStylist()})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
