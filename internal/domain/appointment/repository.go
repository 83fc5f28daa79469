package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
)

// Repository é o colaborador de persistência do motor. Leitura da
// configuração da barbearia, leitura/escrita de agendamentos e fila de
// espera. A implementação deve dar ao CreateAppointmentIfFree a
// atomicidade exigida (check + insert como unidade única por barbeiro).
type Repository interface {
	// -------- Barbershop config --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	GetWeekTemplate(
		ctx context.Context,
		barbershopID uint,
	) (schedule.WeekTemplate, error)

	GetBlockedDates(
		ctx context.Context,
		barbershopID uint,
	) (map[string]bool, error)

	ListBlockedSlots(
		ctx context.Context,
		barbershopID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]schedule.Interval, error)

	// -------- Service / Barber / Client --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.User, error)

	ListBarbers(
		ctx context.Context,
		barbershopID uint,
	) ([]models.User, error)

	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointmentIfFree revalida o conflito e insere na mesma
	// transação, com lock de linha. Devolve ConflictError quando outro
	// agendamento não-terminal do mesmo barbeiro cruza [start, end).
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		barbershopID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentByToken(
		ctx context.Context,
		token string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability / reporting --------
	ListAppointmentsForDay(
		ctx context.Context,
		barbershopID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Waiting list --------
	CreateWaitingEntry(
		ctx context.Context,
		entry *models.WaitingListEntry,
	) error

	DeleteWaitingEntry(
		ctx context.Context,
		barbershopID uint,
		date string,
		clientID uint,
	) error

	ListWaitingEntries(
		ctx context.Context,
		barbershopID uint,
		date string,
	) ([]models.WaitingListEntry, error)

	// PopWaitingHead remove e devolve a entrada mais antiga (FIFO) do
	// dia, ou nil se a fila estiver vazia.
	PopWaitingHead(
		ctx context.Context,
		barbershopID uint,
		date string,
	) (*models.WaitingListEntry, error)
}
