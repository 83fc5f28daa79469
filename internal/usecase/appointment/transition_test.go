package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
	wl "github.com/BruksfildServices01/barber-agenda/internal/usecase/waitinglist"
)

func newTransitionUC(repo *fakeRepo, recorder *recordNotifier) *TransitionAppointment {
	promote := wl.NewPromoteNext(repo, nil, recorder)
	return NewTransitionAppointment(repo, nil, recorder, promote)
}

func TestTransitionConfirm(t *testing.T) {
	repo := newFakeRepo()
	id := repo.seedAppointment(models.Appointment{
		BarberID:  1,
		ServiceID: 10,
		StartTime: spTime(10, 0),
		EndTime:   spTime(10, 30),
		Status:    "pending",
	})

	recorder := &recordNotifier{}
	uc := newTransitionUC(repo, recorder)

	ap, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID:  1,
		AppointmentID: id,
		Target:        domain.StatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	// persistido, não só no ponteiro devolvido
	stored, err := repo.GetAppointment(context.Background(), 1, id)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)

	require.Len(t, recorder.byKind(notify.EventStatusChanged), 1)
}

func TestTransitionCompleteComputesCommission(t *testing.T) {
	repo := newFakeRepo()
	id := repo.seedAppointment(models.Appointment{
		BarberID:  1, // comissão 40%
		ServiceID: 10, // preço 100
		StartTime: spTime(10, 0),
		EndTime:   spTime(10, 30),
		Status:    "confirmed",
	})

	uc := newTransitionUC(repo, &recordNotifier{})

	ap, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID:  1,
		AppointmentID: id,
		Target:        domain.StatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CommissionAmount)
	assert.Equal(t, 40.0, *ap.CommissionAmount)
	require.NotNil(t, ap.CompletedAt)
}

func TestTransitionLateCancelChargesFeeAndPromotes(t *testing.T) {
	repo := newFakeRepo()

	// começa daqui a 1h: bem dentro da janela de multa (limite 24h)
	loc := timezone.Location(repo.shop.Timezone)
	start := time.Now().In(loc).Add(time.Hour)
	date := start.Format("2006-01-02")

	id := repo.seedAppointment(models.Appointment{
		BarberID:  1,
		ServiceID: 10,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    "confirmed",
	})

	repo.waiting = []models.WaitingListEntry{
		{ID: 1, BarbershopID: 1, Date: date, ClientID: 5, ClientName: "Ana", RequestedAt: time.Now().Add(-time.Hour)},
		{ID: 2, BarbershopID: 1, Date: date, ClientID: 6, ClientName: "Bia", RequestedAt: time.Now()},
	}

	recorder := &recordNotifier{}
	uc := newTransitionUC(repo, recorder)

	ap, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID:  1,
		AppointmentID: id,
		Target:        domain.StatusCancelled,
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", ap.Status)
	require.NotNil(t, ap.CancellationFee)
	assert.Equal(t, 50.0, *ap.CancellationFee) // 100 * 50%

	// horário liberado → oferta para a cabeça da fila (FIFO), com o
	// barbeiro e a janela que vagaram
	offers := recorder.byKind(notify.EventPromotionOffered)
	require.Len(t, offers, 1)
	assert.Equal(t, uint(5), offers[0].ClientID)
	assert.Equal(t, date, offers[0].Date)
	assert.Equal(t, uint(1), offers[0].BarberID)
	assert.True(t, offers[0].StartTime.Equal(ap.StartTime))
	assert.True(t, offers[0].EndTime.Equal(ap.EndTime))

	require.Len(t, repo.waiting, 1)
	assert.Equal(t, uint(6), repo.waiting[0].ClientID)
}

func TestTransitionDeclineOnlyFromPending(t *testing.T) {
	repo := newFakeRepo()
	id := repo.seedAppointment(models.Appointment{
		BarberID:  1,
		ServiceID: 10,
		StartTime: spTime(10, 0),
		EndTime:   spTime(10, 30),
		Status:    "confirmed",
	})

	uc := newTransitionUC(repo, &recordNotifier{})

	_, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID:  1,
		AppointmentID: id,
		Target:        domain.StatusDeclined,
	})

	var invalid domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestTransitionTerminalStateIsFinal(t *testing.T) {
	repo := newFakeRepo()
	id := repo.seedAppointment(models.Appointment{
		BarberID:  1,
		ServiceID: 10,
		StartTime: spTime(10, 0),
		EndTime:   spTime(10, 30),
		Status:    "completed",
	})

	uc := newTransitionUC(repo, &recordNotifier{})

	for _, target := range []domain.Status{
		domain.StatusConfirmed,
		domain.StatusPaid,
		domain.StatusCancelled,
		domain.StatusDeclined,
	} {
		_, err := uc.Execute(context.Background(), TransitionInput{
			BarbershopID:  1,
			AppointmentID: id,
			Target:        target,
		})

		var invalid domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid, "target %s", target)
	}
}

func TestTransitionInvalidTarget(t *testing.T) {
	repo := newFakeRepo()
	uc := newTransitionUC(repo, &recordNotifier{})

	_, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID:  1,
		AppointmentID: 1,
		Target:        domain.Status("archived"),
	})

	var invalid domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestTransitionUnknownAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := newTransitionUC(repo, &recordNotifier{})

	_, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID:  1,
		AppointmentID: 999,
		Target:        domain.StatusConfirmed,
	})

	var notFound domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
