package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// GetAvailability é o caminho único de cálculo de agenda: booking
// público, painel do dono e relatórios passam todos por aqui — nada de
// recomputar disponibilidade ad hoc em handler.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]schedule.Slot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// O dia consultado é o dia civil de in.Date (ano/mês/dia); o fuso em
	// que o chamador fez o parse não desloca a consulta.
	loc := timezone.Location(shop.Timezone)
	dayStart, dayEnd := timezone.DayBounds(in.Date, loc)

	// --------------------------------------------------
	// Janelas abertas do dia
	// --------------------------------------------------
	tpl, err := uc.repo.GetWeekTemplate(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	blockedDates, err := uc.repo.GetBlockedDates(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	blockedSlots, err := uc.repo.ListBlockedSlots(ctx, in.BarbershopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	open, err := schedule.ResolveOpenIntervals(tpl, blockedDates, blockedSlots, dayStart)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return []schedule.Slot{}, nil
	}

	// --------------------------------------------------
	// Barbeiros elegíveis + agenda ocupada
	// --------------------------------------------------
	barbers, err := uc.repo.ListBarbers(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	eligible := schedule.EligibleBarbers(barbers, in.PreferredBarberID)
	if in.PreferredBarberID != 0 && len(eligible) == 0 {
		return nil, domain.NotFoundError{Entity: "barber", ID: in.PreferredBarberID}
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, in.BarbershopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Slots por barbeiro (nunca fundidos entre recursos)
	// --------------------------------------------------
	duration := time.Duration(service.DurationMin) * time.Minute
	granularity := time.Duration(shop.SlotGranularityMin) * time.Minute

	perBarber := make(map[uint][]schedule.Interval, len(eligible))
	for _, barber := range eligible {
		busy := schedule.BusyIntervals(appointments, barber.ID)
		perBarber[barber.ID] = schedule.GenerateSlots(open, busy, duration, granularity, in.NotBefore)
	}

	return schedule.MergeBarberSlots(perBarber), nil
}
