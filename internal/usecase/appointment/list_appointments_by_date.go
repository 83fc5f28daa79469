package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

type AppointmentListItem struct {
	ID          uint      `json:"id"`
	BarberID    uint      `json:"barber_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	Price       float64   `json:"price"`
}

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barbershopID uint,
	date time.Time,
) ([]AppointmentListItem, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	// dia civil pedido, ancorado no fuso da barbearia
	loc := timezone.Location(shop.Timezone)
	start, end := timezone.DayBounds(date, loc)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barbershopID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toListItems(appointments), nil
}

func toListItems(appointments []models.Appointment) []AppointmentListItem {
	out := make([]AppointmentListItem, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, AppointmentListItem{
			ID:          ap.ID,
			BarberID:    ap.BarberID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
			Price:       ap.Service.Price,
		})
	}
	return out
}
