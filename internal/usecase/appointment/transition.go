package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
	wl "github.com/BruksfildServices01/barber-agenda/internal/usecase/waitinglist"
)

// ======================================================
// INPUT
// ======================================================

type TransitionInput struct {
	BarbershopID  uint
	AppointmentID uint
	Target        domain.Status
	ActorID       *uint
}

// ======================================================
// USE CASE
// ======================================================

// TransitionAppointment aplica a máquina de estados. Cancelamento e
// recusa disparam a checagem de promoção da fila DEPOIS do update
// persistido — nunca se promove para um horário ainda ocupado.
type TransitionAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	notify  notify.Notifier
	promote *wl.PromoteNext
}

func NewTransitionAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	notifier notify.Notifier,
	promote *wl.PromoteNext,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:    repo,
		audit:   auditD,
		notify:  notifier,
		promote: promote,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	in TransitionInput,
) (*models.Appointment, error) {

	if !in.Target.IsValid() {
		return nil, domain.InvalidTransitionError{To: in.Target}
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.BarbershopID, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	switch in.Target {

	case domain.StatusConfirmed:
		err = domain.Confirm(ap)

	case domain.StatusPaid:
		// captura externa já aconteceu; aqui só registramos
		err = domain.Pay(ap)

	case domain.StatusCompleted:
		var service *models.Service
		var barber *models.User

		service, err = uc.repo.GetService(ctx, in.BarbershopID, ap.ServiceID)
		if err != nil {
			return nil, err
		}
		barber, err = uc.repo.GetBarber(ctx, in.BarbershopID, ap.BarberID)
		if err != nil {
			return nil, err
		}
		err = domain.Complete(ap, service, barber, now)

	case domain.StatusCancelled:
		var service *models.Service
		service, err = uc.repo.GetService(ctx, in.BarbershopID, ap.ServiceID)
		if err != nil {
			return nil, err
		}
		err = domain.Cancel(ap, shop, service, now)

	case domain.StatusDeclined:
		err = domain.Decline(ap, now)

	default:
		err = domain.InvalidTransitionError{From: domain.Status(ap.Status), To: in.Target}
	}

	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       in.ActorID,
		Action:       "appointment_" + string(in.Target),
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	uc.notify.Notify(notify.Event{
		Kind:          notify.EventStatusChanged,
		BarbershopID:  in.BarbershopID,
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		ClientID:      ap.ClientID,
		Status:        ap.Status,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
	})

	// --------------------------------------------------
	// Horário liberado → oferta para a fila de espera
	// --------------------------------------------------
	if domain.FreesSlot(in.Target) && uc.promote != nil {
		loc := timezone.Location(shop.Timezone)
		date := ap.StartTime.In(loc).Format(schedule.DateKey)
		freed := schedule.Interval{Start: ap.StartTime, End: ap.EndTime}

		if _, err := uc.promote.Execute(ctx, in.BarbershopID, date, ap.BarberID, freed); err != nil {
			// promoção não desfaz o cancelamento já persistido
			uc.audit.Dispatch(audit.Event{
				BarbershopID: in.BarbershopID,
				Action:       "waiting_list_promotion_failed",
				Entity:       "waiting_list",
				Metadata:     map[string]any{"date": date, "error": err.Error()},
			})
		}
	}

	return ap, nil
}
