package waitinglist

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	wlerr "github.com/BruksfildServices01/barber-agenda/internal/domain/waitinglist"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
)

// fakeQueueRepo cobre só a fatia de domain.Repository que a fila usa.
type fakeQueueRepo struct {
	domain.Repository

	mu      sync.Mutex
	shop    *models.Barbershop
	entries []models.WaitingListEntry
	nextID  uint
}

func newFakeQueueRepo() *fakeQueueRepo {
	return &fakeQueueRepo{
		shop: &models.Barbershop{
			ID:       1,
			Timezone: "America/Sao_Paulo",
		},
	}
}

func (r *fakeQueueRepo) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	if id != r.shop.ID {
		return nil, domain.NotFoundError{Entity: "barbershop", ID: id}
	}
	return r.shop, nil
}

func (r *fakeQueueRepo) CreateWaitingEntry(ctx context.Context, entry *models.WaitingListEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries {
		if existing.BarbershopID == entry.BarbershopID &&
			existing.Date == entry.Date &&
			existing.ClientID == entry.ClientID {
			return wlerr.AlreadyQueuedError{Date: entry.Date, ClientID: entry.ClientID}
		}
	}

	r.nextID++
	entry.ID = r.nextID
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeQueueRepo) DeleteWaitingEntry(ctx context.Context, barbershopID uint, date string, clientID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.entries {
		if existing.BarbershopID == barbershopID &&
			existing.Date == date &&
			existing.ClientID == clientID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeQueueRepo) ListWaitingEntries(ctx context.Context, barbershopID uint, date string) ([]models.WaitingListEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.WaitingListEntry
	for _, existing := range r.entries {
		if existing.BarbershopID == barbershopID && existing.Date == date {
			out = append(out, existing)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RequestedAt.Before(out[j].RequestedAt)
	})
	return out, nil
}

func (r *fakeQueueRepo) PopWaitingHead(ctx context.Context, barbershopID uint, date string) (*models.WaitingListEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	headIdx := -1
	for i, existing := range r.entries {
		if existing.BarbershopID != barbershopID || existing.Date != date {
			continue
		}
		if headIdx == -1 || existing.RequestedAt.Before(r.entries[headIdx].RequestedAt) {
			headIdx = i
		}
	}

	if headIdx == -1 {
		return nil, nil
	}

	head := r.entries[headIdx]
	r.entries = append(r.entries[:headIdx], r.entries[headIdx+1:]...)
	return &head, nil
}

type recordNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordNotifier) Notify(ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// ======================================================
// TESTS
// ======================================================

const queueDate = "2030-01-07"

func TestEnqueue(t *testing.T) {
	repo := newFakeQueueRepo()
	uc := NewEnqueue(repo, nil)

	entry, err := uc.Execute(context.Background(), 1, queueDate, 5, "Ana")
	require.NoError(t, err)

	assert.NotZero(t, entry.ID)
	assert.Equal(t, queueDate, entry.Date)
	assert.False(t, entry.RequestedAt.IsZero())

	entries, err := NewList(repo).Execute(context.Background(), 1, queueDate)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestEnqueueDuplicateSameDay(t *testing.T) {
	repo := newFakeQueueRepo()
	uc := NewEnqueue(repo, nil)

	_, err := uc.Execute(context.Background(), 1, queueDate, 5, "Ana")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, queueDate, 5, "Ana")

	var queued wlerr.AlreadyQueuedError
	require.ErrorAs(t, err, &queued)
	assert.Equal(t, queueDate, queued.Date)
	assert.Equal(t, uint(5), queued.ClientID)

	// em outro dia o mesmo cliente entra normalmente
	_, err = uc.Execute(context.Background(), 1, "2030-01-08", 5, "Ana")
	require.NoError(t, err)
}

func TestEnqueueInvalidDate(t *testing.T) {
	repo := newFakeQueueRepo()
	uc := NewEnqueue(repo, nil)

	_, err := uc.Execute(context.Background(), 1, "07/01/2030", 5, "Ana")
	require.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestPromoteNextIsFIFO(t *testing.T) {
	repo := newFakeQueueRepo()

	base := time.Date(2030, 1, 6, 10, 0, 0, 0, time.UTC)
	repo.entries = []models.WaitingListEntry{
		{ID: 3, BarbershopID: 1, Date: queueDate, ClientID: 7, ClientName: "Caio", RequestedAt: base.Add(2 * time.Minute)},
		{ID: 1, BarbershopID: 1, Date: queueDate, ClientID: 5, ClientName: "Ana", RequestedAt: base},
		{ID: 2, BarbershopID: 1, Date: queueDate, ClientID: 6, ClientName: "Bia", RequestedAt: base.Add(time.Minute)},
	}

	recorder := &recordNotifier{}
	uc := NewPromoteNext(repo, nil, recorder)

	freed := schedule.Interval{
		Start: time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 1, 7, 10, 30, 0, 0, time.UTC),
	}

	var promoted []uint
	for i := 0; i < 3; i++ {
		entry, err := uc.Execute(context.Background(), 1, queueDate, 2, freed)
		require.NoError(t, err)
		require.NotNil(t, entry)
		promoted = append(promoted, entry.ClientID)
	}

	// ordem de chegada, nunca de id
	assert.Equal(t, []uint{5, 6, 7}, promoted)

	// fila vazia → nil sem erro, sem notificação nova
	entry, err := uc.Execute(context.Background(), 1, queueDate, 2, freed)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Len(t, recorder.events, 3)

	for _, ev := range recorder.events {
		assert.Equal(t, notify.EventPromotionOffered, ev.Kind)
		assert.Equal(t, queueDate, ev.Date)
		assert.Equal(t, uint(2), ev.BarberID)
		assert.True(t, ev.StartTime.Equal(freed.Start))
		assert.True(t, ev.EndTime.Equal(freed.End))
	}
}

func TestPromoteNextManualTriggerWithoutSlot(t *testing.T) {
	repo := newFakeQueueRepo()
	base := time.Date(2030, 1, 6, 10, 0, 0, 0, time.UTC)
	repo.entries = []models.WaitingListEntry{
		{ID: 1, BarbershopID: 1, Date: queueDate, ClientID: 5, ClientName: "Ana", RequestedAt: base},
	}

	recorder := &recordNotifier{}
	uc := NewPromoteNext(repo, nil, recorder)

	entry, err := uc.Execute(context.Background(), 1, queueDate, 0, schedule.Interval{})
	require.NoError(t, err)
	require.NotNil(t, entry)

	require.Len(t, recorder.events, 1)
	assert.Zero(t, recorder.events[0].BarberID)
	assert.True(t, recorder.events[0].StartTime.IsZero())
}

func TestRemove(t *testing.T) {
	repo := newFakeQueueRepo()

	_, err := NewEnqueue(repo, nil).Execute(context.Background(), 1, queueDate, 5, "Ana")
	require.NoError(t, err)

	require.NoError(t, NewRemove(repo, nil).Execute(context.Background(), 1, queueDate, 5))

	entries, err := NewList(repo).Execute(context.Background(), 1, queueDate)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
