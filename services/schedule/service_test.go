// File: services/schedule/service_test.go
package scheduleService

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
	"slotwise/schedule"
)

// fakeScheduleRepo is an in-memory stand-in for the mongo repository.
type fakeScheduleRepo struct {
	weekly    map[string]models.WeeklySchedule
	overrides map[string]models.DateOverride // key: providerID + "|" + date
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		weekly:    make(map[string]models.WeeklySchedule),
		overrides: make(map[string]models.DateOverride),
	}
}

func (f *fakeScheduleRepo) GetWeeklySchedule(_ context.Context, providerID string) (models.WeeklySchedule, error) {
	if w, ok := f.weekly[providerID]; ok {
		return w, nil
	}
	return models.DefaultWeeklySchedule(providerID), nil
}

func (f *fakeScheduleRepo) SaveWeeklySchedule(_ context.Context, schedule models.WeeklySchedule) error {
	f.weekly[schedule.ProviderID] = schedule
	return nil
}

func (f *fakeScheduleRepo) GetOverride(_ context.Context, providerID, date string) (*models.DateOverride, error) {
	if ov, ok := f.overrides[providerID+"|"+date]; ok {
		return &ov, nil
	}
	return nil, nil
}

func (f *fakeScheduleRepo) GetOverridesInRange(_ context.Context, providerID, from, to string) (models.OverrideMap, error) {
	out := make(models.OverrideMap)
	for _, ov := range f.overrides {
		if ov.ProviderID == providerID && ov.Date >= from && ov.Date <= to {
			out[ov.Date] = ov
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) UpsertOverride(_ context.Context, override models.DateOverride) error {
	f.overrides[override.ProviderID+"|"+override.Date] = override
	return nil
}

func (f *fakeScheduleRepo) DeleteOverride(_ context.Context, providerID, date string) error {
	delete(f.overrides, providerID+"|"+date)
	return nil
}

func (f *fakeScheduleRepo) DeleteOverridesBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	cut := cutoff.Format(models.DateLayout)
	for k, ov := range f.overrides {
		if ov.Date < cut {
			delete(f.overrides, k)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeScheduleRepo) EnsureIndexes(context.Context) error { return nil }

// fakeLedger returns canned appointments.
type fakeLedger struct {
	appts []models.Appointment
}

func (f *fakeLedger) GetByProviderAndDate(_ context.Context, providerID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ProviderID == providerID && a.Date == date && a.CountsForConflict() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeLedger) GetByProviderInRange(_ context.Context, providerID, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ProviderID == providerID && a.Date >= from && a.Date <= to && a.CountsForConflict() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeLedger) TryInsert(_ context.Context, appt models.Appointment) error {
	f.appts = append(f.appts, appt)
	return nil
}

func (f *fakeLedger) EnsureIndexes(context.Context) error { return nil }

func window(t *testing.T, start, end string) models.TimeWindow {
	t.Helper()
	s, err := models.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := models.ParseTimeOfDay(end)
	require.NoError(t, err)
	return models.TimeWindow{Start: s, End: e}
}

func newTestService(repo *fakeScheduleRepo, ledger *fakeLedger) *DefaultScheduleService {
	return &DefaultScheduleService{
		Repo:                 repo,
		Ledger:               ledger,
		DefaultBufferMinutes: 10,
	}
}

func seedMonday(t *testing.T, repo *fakeScheduleRepo, providerID string) {
	t.Helper()
	weekly := models.DefaultWeeklySchedule(providerID)
	weekly.Days[models.Monday] = models.DaySchedule{
		Enabled: true,
		Windows: []models.TimeWindow{window(t, "09:00", "12:00")},
	}
	repo.weekly[providerID] = weekly
}

func TestGetEffectiveDayReportsAppointments(t *testing.T) {
	repo := newFakeScheduleRepo()
	seedMonday(t, repo, "prov-1")
	ledger := &fakeLedger{appts: []models.Appointment{
		{ID: "a1", ProviderID: "prov-1", Date: "2025-03-10", Start: 600, DurationMinutes: 50, Status: models.AppointmentScheduled},
	}}
	svc := newTestService(repo, ledger)

	view, err := svc.GetEffectiveDay(context.Background(), "prov-1", "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, models.DayStandard, view.Status)
	assert.True(t, view.HasAppointments)
	require.Len(t, view.Windows, 1)
}

func TestGetEffectiveDayUnknownProviderIsBlocked(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo(), &fakeLedger{})

	view, err := svc.GetEffectiveDay(context.Background(), "nobody", "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, models.DayBlocked, view.Status)
	assert.False(t, view.HasAppointments)
}

func TestGetDaySlotsUsesDefaultBuffer(t *testing.T) {
	repo := newFakeScheduleRepo()
	seedMonday(t, repo, "prov-1")
	svc := newTestService(repo, &fakeLedger{})

	slots, err := svc.GetDaySlots(context.Background(), "prov-1", "2025-03-10", 50, 0)

	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].Start.String())
	assert.Equal(t, "10:00", slots[1].Start.String())
	assert.Equal(t, "11:00", slots[2].Start.String())
}

func TestValidateBookingEndToEnd(t *testing.T) {
	repo := newFakeScheduleRepo()
	seedMonday(t, repo, "prov-1")
	ledger := &fakeLedger{appts: []models.Appointment{
		{ID: "a1", ProviderID: "prov-1", Date: "2025-03-10", Start: 600, DurationMinutes: 50, Status: models.AppointmentScheduled},
	}}
	svc := newTestService(repo, ledger)

	// 11:00 for 50 minutes clears the 10:00-10:50 appointment.
	confirmation, err := svc.ValidateBooking(context.Background(), "prov-1", schedule.BookingRequest{
		Date: "2025-03-10", Start: 660, DurationMinutes: 50,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.Token)

	// 10:20 for 30 minutes collides with it.
	_, err = svc.ValidateBooking(context.Background(), "prov-1", schedule.BookingRequest{
		Date: "2025-03-10", Start: 620, DurationMinutes: 30,
	})
	require.Error(t, err)
	assert.True(t, schedule.IsConflict(err))
}

func TestEditorPersistsThroughRepo(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo, &fakeLedger{})
	ctx := context.Background()

	weekly, err := svc.AddWindow(ctx, "prov-1", models.Monday, window(t, "09:00", "12:00"))
	require.NoError(t, err)
	assert.Len(t, weekly.Days[models.Monday].Windows, 1)

	weekly, err = svc.ToggleWeekday(ctx, "prov-1", models.Monday)
	require.NoError(t, err)
	assert.True(t, weekly.Days[models.Monday].Enabled)

	// The persisted copy matches what was returned.
	stored, err := svc.GetWeeklySchedule(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, weekly.Days[models.Monday], stored.Days[models.Monday])

	// An overlapping add leaves the stored draft unchanged.
	_, err = svc.AddWindow(ctx, "prov-1", models.Monday, window(t, "11:00", "13:00"))
	require.Error(t, err)
	assert.True(t, schedule.IsInvalidWindow(err))
	stored, err = svc.GetWeeklySchedule(ctx, "prov-1")
	require.NoError(t, err)
	assert.Len(t, stored.Days[models.Monday].Windows, 1)
}

func TestSetOverrideCustomSeedsFromResolver(t *testing.T) {
	repo := newFakeScheduleRepo()
	seedMonday(t, repo, "prov-1")
	svc := newTestService(repo, &fakeLedger{})

	// No windows supplied: seeded from the date's current resolution.
	override, err := svc.SetOverride(context.Background(), "prov-1", "2025-03-10", models.OverrideCustom, nil)

	require.NoError(t, err)
	assert.Equal(t, models.OverrideCustom, override.Type)
	require.Len(t, override.Windows, 1)
	assert.Equal(t, "09:00", override.Windows[0].Start.String())
	assert.Equal(t, "12:00", override.Windows[0].End.String())
}

func TestSetOverrideBlockedThenClearRestoresWeekly(t *testing.T) {
	repo := newFakeScheduleRepo()
	seedMonday(t, repo, "prov-1")
	svc := newTestService(repo, &fakeLedger{})
	ctx := context.Background()

	_, err := svc.SetOverride(ctx, "prov-1", "2025-03-10", models.OverrideBlocked, nil)
	require.NoError(t, err)

	view, err := svc.GetEffectiveDay(ctx, "prov-1", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, models.DayBlocked, view.Status)
	assert.Equal(t, models.SourceOverride, view.Source)

	require.NoError(t, svc.ClearOverride(ctx, "prov-1", "2025-03-10"))

	view, err = svc.GetEffectiveDay(ctx, "prov-1", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, models.DayStandard, view.Status)
	assert.Equal(t, models.SourceWeekly, view.Source)
}

func TestGetOverridesInRange(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo, &fakeLedger{})
	ctx := context.Background()

	_, err := svc.SetOverride(ctx, "prov-1", "2025-03-10", models.OverrideBlocked, nil)
	require.NoError(t, err)
	_, err = svc.SetOverride(ctx, "prov-1", "2025-04-01", models.OverrideBlocked, nil)
	require.NoError(t, err)

	overrides, err := svc.GetOverrides(ctx, "prov-1", "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Len(t, overrides, 1)
	assert.Contains(t, overrides, "2025-03-10")
}
