package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

func TestListAppointmentsByDate(t *testing.T) {
	repo := newFakeRepo()

	wanted := repo.seedAppointment(models.Appointment{
		BarberID:  1,
		ServiceID: 10,
		StartTime: spTime(10, 0),
		EndTime:   spTime(10, 30),
		Status:    "confirmed",
	})
	// dia anterior não entra na listagem
	repo.seedAppointment(models.Appointment{
		BarberID:  1,
		ServiceID: 10,
		StartTime: spTime(10, 0).AddDate(0, 0, -1),
		EndTime:   spTime(10, 30).AddDate(0, 0, -1),
		Status:    "confirmed",
	})

	uc := NewListAppointmentsByDate(repo)

	// data vinda do handler: parse sem fuso, meia-noite UTC
	date := time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

	items, err := uc.Execute(context.Background(), 1, date)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, wanted, items[0].ID)
	assert.Equal(t, spTime(10, 0), items[0].StartTime)
	assert.Equal(t, "confirmed", items[0].Status)
}
