package subscription

import (
	"fmt"
	"testing"
	"time"

	"farmstead/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubRepo struct {
	subs map[string]models.Subscription
}

func newFakeSubRepo() *fakeSubRepo {
	return &fakeSubRepo{subs: make(map[string]models.Subscription)}
}

func (r *fakeSubRepo) Create(sub *models.Subscription) error {
	r.subs[sub.ID] = *sub
	return nil
}

func (r *fakeSubRepo) GetByID(subID string) (*models.Subscription, error) {
	sub, ok := r.subs[subID]
	if !ok {
		return nil, fmt.Errorf("subscription with id %s not found", subID)
	}
	copied := sub
	return &copied, nil
}

func (r *fakeSubRepo) GetBySession(sessionID string) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range r.subs {
		if s.SessionID == sessionID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubRepo) Update(sub *models.Subscription) error {
	if _, ok := r.subs[sub.ID]; !ok {
		return fmt.Errorf("subscription with id %s not found", sub.ID)
	}
	r.subs[sub.ID] = *sub
	return nil
}

type fakeProductRepo struct{}

func (fakeProductRepo) Create(*models.Product) error { return nil }
func (fakeProductRepo) GetByID(productID string) (*models.Product, error) {
	if productID == "missing" {
		return nil, fmt.Errorf("product with id %s not found", productID)
	}
	return &models.Product{ID: productID, Name: "Heirloom Tomatoes", Price: 5.5}, nil
}
func (fakeProductRepo) GetAll() ([]models.Product, error) { return nil, nil }

func (fakeProductRepo) GetByCategory(string) ([]models.Product, error) { return nil, nil }

func (fakeProductRepo) Search(string) ([]models.Product, error) { return nil, nil }

func (fakeProductRepo) DecrementStock(string, int) error { return nil }

type fakeReminders struct {
	scheduled []models.Subscription
}

func (r *fakeReminders) ScheduleDeliveryReminder(sub models.Subscription) error {
	r.scheduled = append(r.scheduled, sub)
	return nil
}

func newTestService(today string) (*DefaultSubscriptionService, *fakeSubRepo, *fakeReminders) {
	repo := newFakeSubRepo()
	reminders := &fakeReminders{}
	now, _ := time.Parse("2006-01-02", today)
	svc := &DefaultSubscriptionService{
		Repo:        repo,
		ProductRepo: fakeProductRepo{},
		Reminders:   reminders,
		Now:         func() time.Time { return now },
	}
	return svc, repo, reminders
}

func mwfSchedule() models.DeliverySchedule {
	return models.DeliverySchedule{Monday: true, Wednesday: true, Friday: true}
}

func TestCreateComputesNextDelivery(t *testing.T) {
	// 2024-03-14 is a Thursday; next active day is Friday the 15th.
	svc, _, reminders := newTestService("2024-03-14")

	sub, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "prod-1",
		Quantity:  2,
		StartDate: "2024-03-14",
		Schedule:  mwfSchedule(),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", sub.NextDelivery)
	assert.True(t, sub.NextDeliveryValid)
	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)
	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, sub.ID, reminders.scheduled[0].ID)
}

func TestCreateRejectsEmptySchedule(t *testing.T) {
	svc, _, _ := newTestService("2024-03-14")

	_, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "prod-1",
		Quantity:  1,
		StartDate: "2024-03-14",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "schedule", verr.Field)
}

func TestCreateRejectsUnknownProduct(t *testing.T) {
	svc, _, _ := newTestService("2024-03-14")

	_, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "missing",
		Quantity:  1,
		StartDate: "2024-03-14",
		Schedule:  mwfSchedule(),
	})
	assert.Error(t, err)
}

func TestAddSkipDateRecomputesAndPrunes(t *testing.T) {
	svc, _, _ := newTestService("2024-03-14")

	sub, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "prod-1",
		Quantity:  1,
		StartDate: "2024-03-01",
		Schedule:  mwfSchedule(),
	})
	require.NoError(t, err)
	require.Equal(t, "2024-03-15", sub.NextDelivery)

	// Skipping Friday the 15th pushes delivery past the inactive weekend.
	updated, err := svc.AddSkipDate(sub.ID, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-18", updated.NextDelivery)
	assert.Equal(t, []string{"2024-03-15"}, updated.SkipDates)

	// Adding the same date twice is a no-op, not a duplicate.
	again, err := svc.AddSkipDate(sub.ID, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-15"}, again.SkipDates)
}

func TestSetVacationModeRecomputes(t *testing.T) {
	svc, _, _ := newTestService("2024-03-14")

	sub, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "prod-1",
		Quantity:  1,
		StartDate: "2024-03-14",
		Schedule:  mwfSchedule(),
	})
	require.NoError(t, err)

	updated, err := svc.SetVacationMode(sub.ID, &models.VacationMode{
		Active:    true,
		StartDate: "2024-03-15",
		EndDate:   "2024-03-18",
	})
	require.NoError(t, err)
	// Friday the 15th and Monday the 18th are inside the range; Wednesday
	// the 20th is the first clear active day.
	assert.Equal(t, "2024-03-20", updated.NextDelivery)
}

func TestSetVacationModeRejectsInvertedRange(t *testing.T) {
	svc, _, _ := newTestService("2024-03-14")

	sub, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "prod-1",
		Quantity:  1,
		StartDate: "2024-03-14",
		Schedule:  mwfSchedule(),
	})
	require.NoError(t, err)

	_, err = svc.SetVacationMode(sub.ID, &models.VacationMode{
		Active:    true,
		StartDate: "2024-03-20",
		EndDate:   "2024-03-15",
	})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPauseKeepsNextDelivery(t *testing.T) {
	svc, _, _ := newTestService("2024-03-14")

	sub, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "prod-1",
		Quantity:  1,
		StartDate: "2024-03-14",
		Schedule:  mwfSchedule(),
	})
	require.NoError(t, err)

	paused, err := svc.Pause(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusPaused, paused.Status)
	assert.Equal(t, sub.NextDelivery, paused.NextDelivery)

	resumed, err := svc.Resume(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, resumed.Status)
}

func TestCancelledSubscriptionRejectsMutations(t *testing.T) {
	svc, _, _ := newTestService("2024-03-14")

	sub, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "prod-1",
		Quantity:  1,
		StartDate: "2024-03-14",
		Schedule:  mwfSchedule(),
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusCancelled, cancelled.Status)
	// The stored next delivery survives cancellation.
	assert.Equal(t, sub.NextDelivery, cancelled.NextDelivery)

	_, err = svc.AddSkipDate(sub.ID, "2024-03-22")
	var cerr *CancelledError
	assert.ErrorAs(t, err, &cerr)

	_, err = svc.Pause(sub.ID)
	assert.ErrorAs(t, err, &cerr)
}

func TestNoReminderWhenLookaheadExhausted(t *testing.T) {
	svc, _, reminders := newTestService("2024-03-14")

	sub, err := svc.Create(CreateSubscriptionInput{
		SessionID: "sess-1",
		ProductID: "prod-1",
		Quantity:  1,
		StartDate: "2024-03-14",
		Schedule:  models.DeliverySchedule{Friday: true},
	})
	require.NoError(t, err)
	require.Len(t, reminders.scheduled, 1)

	// Vacation covering the whole lookahead window leaves no valid slot.
	updated, err := svc.SetVacationMode(sub.ID, &models.VacationMode{
		Active:    true,
		StartDate: "2024-03-01",
		EndDate:   "2024-06-01",
	})
	require.NoError(t, err)
	assert.False(t, updated.NextDeliveryValid)
	// No new reminder was enqueued for the invalid date.
	assert.Len(t, reminders.scheduled, 1)
}

func TestPreviewDoesNotPersist(t *testing.T) {
	svc, repo, _ := newTestService("2024-03-14")

	result, err := svc.Preview(PreviewInput{Schedule: mwfSchedule()})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", result.NextDelivery)
	assert.True(t, result.Valid)
	assert.Empty(t, repo.subs)
}

func TestPreviewRejectsMalformedStartDate(t *testing.T) {
	svc, _, _ := newTestService("2024-03-14")

	_, err := svc.Preview(PreviewInput{Schedule: mwfSchedule(), StartDate: "14-03-2024"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "start_date", verr.Field)
}
