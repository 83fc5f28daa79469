package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/infra/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint

	// 0 = auto-atribuição: primeiro barbeiro livre, id crescente
	BarberID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	// Dono agendando no balcão: nasce confirmado e sem antecedência
	// mínima
	OwnerBooked bool
	ActorID     *uint
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment é a transação de reserva: revalida o slot no
// commit, dentro do lock por barbeiro + transação no banco. Nunca
// reexecuta sozinho — conflito volta para o chamador decidir.
type CreateAppointment struct {
	repo   domain.Repository
	locker lock.BarberLocker
	audit  *audit.Dispatcher
	notify notify.Notifier
}

func NewCreateAppointment(
	repo domain.Repository,
	locker lock.BarberLocker,
	auditD *audit.Dispatcher,
	notifier notify.Notifier,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		audit:  auditD,
		notify: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Barbearia + data/hora no fuso dela
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Antecedência mínima (só para o fluxo público)
	// --------------------------------------------------
	now := timezone.NowIn(shop.Timezone)

	if !in.OwnerBooked {
		minAdvance := shop.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}
		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	} else if start.Before(now) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 3. Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)
	candidate := schedule.Interval{Start: start, End: end}

	// --------------------------------------------------
	// 4. Janelas abertas do dia (template - bloqueios)
	// --------------------------------------------------
	dayStart, dayEnd := timezone.DayBounds(start, loc)

	open, err := uc.resolveOpenIntervals(ctx, in.BarbershopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	if !insideAny(open, candidate) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 5. Barbeiro (escolhido ou auto-atribuído)
	// --------------------------------------------------
	barber, err := uc.pickBarber(ctx, in, candidate, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Commit: lock por barbeiro + check-and-insert na
	//    mesma transação. No máximo um vencedor.
	// --------------------------------------------------
	release, err := uc.locker.Lock(ctx, barber.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	ap := &models.Appointment{
		BarbershopID: in.BarbershopID,
		BarberID:     barber.ID,
		ClientID:     client.ID,
		ServiceID:    service.ID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus(in.OwnerBooked)),
		ManageToken:  uuid.NewString(),
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Auditoria + notificação (fire-and-forget)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       in.ActorID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	uc.notify.Notify(notify.Event{
		Kind:          notify.EventBookingCreated,
		BarbershopID:  in.BarbershopID,
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		ClientID:      client.ID,
		ClientName:    client.Name,
		Status:        ap.Status,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
	})

	return ap, nil
}

// ======================================================
// HELPERS
// ======================================================

func (uc *CreateAppointment) resolveOpenIntervals(
	ctx context.Context,
	barbershopID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]schedule.Interval, error) {

	tpl, err := uc.repo.GetWeekTemplate(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	blockedDates, err := uc.repo.GetBlockedDates(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	blockedSlots, err := uc.repo.ListBlockedSlots(ctx, barbershopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return schedule.ResolveOpenIntervals(tpl, blockedDates, blockedSlots, dayStart)
}

func insideAny(open []schedule.Interval, candidate schedule.Interval) bool {
	for _, window := range open {
		if window.Contains(candidate) {
			return true
		}
	}
	return false
}

// pickBarber: com preferência, valida que o barbeiro existe; sem
// preferência, varre os elegíveis em id crescente e fica com o
// primeiro livre no horário (desempate determinístico).
func (uc *CreateAppointment) pickBarber(
	ctx context.Context,
	in CreateAppointmentInput,
	candidate schedule.Interval,
	dayStart time.Time,
	dayEnd time.Time,
) (*models.User, error) {

	if in.BarberID != 0 {
		return uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	}

	barbers, err := uc.repo.ListBarbers(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	eligible := schedule.EligibleBarbers(barbers, 0)
	if len(eligible) == 0 {
		return nil, domain.NotFoundError{Entity: "barber"}
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, in.BarbershopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	for i := range eligible {
		busy := schedule.BusyIntervals(appointments, eligible[i].ID)

		free := true
		for _, b := range busy {
			if candidate.Overlaps(b) {
				free = false
				break
			}
		}
		if free {
			return &eligible[i], nil
		}
	}

	return nil, httperr.ErrBusiness("no_barber_available")
}
