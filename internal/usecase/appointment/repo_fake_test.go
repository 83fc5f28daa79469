package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
)

// fakeRepo é a implementação em memória de domain.Repository usada
// pelos testes dos use cases. Métodos não implementados vêm do embed e
// explodem se algum teste encostar neles.
type fakeRepo struct {
	domain.Repository

	mu sync.Mutex

	shop    *models.Barbershop
	service *models.Service
	barbers []models.User
	tpl     schedule.WeekTemplate

	blockedDates map[string]bool
	blockedSlots []schedule.Interval

	appointments []models.Appointment
	waiting      []models.WaitingListEntry

	nextID uint
}

func newFakeRepo() *fakeRepo {
	var tpl schedule.WeekTemplate
	tpl[int(time.Monday)] = &schedule.DayWindows{
		MorningStart:   "09:00",
		MorningEnd:     "12:00",
		AfternoonStart: "13:00",
		AfternoonEnd:   "18:00",
	}

	return &fakeRepo{
		shop: &models.Barbershop{
			ID:                   1,
			Name:                 "Barbearia Teste",
			Slug:                 "barbearia-teste",
			Timezone:             "America/Sao_Paulo",
			MinAdvanceMinutes:    120,
			SlotGranularityMin:   30,
			CancelFeeEnabled:     true,
			CancelFeePercent:     50,
			CancelTimeLimitHours: 24,
		},
		service: &models.Service{
			ID:           10,
			BarbershopID: 1,
			Name:         "Corte",
			DurationMin:  30,
			Price:        100,
			Active:       true,
		},
		barbers: []models.User{
			{ID: 1, BarbershopID: 1, Name: "João", Active: true, CommissionPercent: 40},
			{ID: 2, BarbershopID: 1, Name: "Pedro", Active: true, CommissionPercent: 30},
		},
		tpl:          tpl,
		blockedDates: map[string]bool{},
	}
}

func (r *fakeRepo) seedAppointment(ap models.Appointment) uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	ap.ID = r.nextID
	if ap.BarbershopID == 0 {
		ap.BarbershopID = r.shop.ID
	}
	r.appointments = append(r.appointments, ap)
	return ap.ID
}

func (r *fakeRepo) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	if id != r.shop.ID {
		return nil, domain.NotFoundError{Entity: "barbershop", ID: id}
	}
	shop := *r.shop
	return &shop, nil
}

func (r *fakeRepo) GetWeekTemplate(ctx context.Context, barbershopID uint) (schedule.WeekTemplate, error) {
	return r.tpl, nil
}

func (r *fakeRepo) GetBlockedDates(ctx context.Context, barbershopID uint) (map[string]bool, error) {
	return r.blockedDates, nil
}

func (r *fakeRepo) ListBlockedSlots(ctx context.Context, barbershopID uint, dayStart, dayEnd time.Time) ([]schedule.Interval, error) {
	return r.blockedSlots, nil
}

func (r *fakeRepo) GetService(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	if serviceID != r.service.ID {
		return nil, domain.NotFoundError{Entity: "service", ID: serviceID}
	}
	service := *r.service
	return &service, nil
}

func (r *fakeRepo) GetBarber(ctx context.Context, barbershopID, barberID uint) (*models.User, error) {
	for _, b := range r.barbers {
		if b.ID == barberID && b.Active {
			barber := b
			return &barber, nil
		}
	}
	return nil, domain.NotFoundError{Entity: "barber", ID: barberID}
}

func (r *fakeRepo) ListBarbers(ctx context.Context, barbershopID uint) ([]models.User, error) {
	return append([]models.User(nil), r.barbers...), nil
}

func (r *fakeRepo) GetOrCreateClient(ctx context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{
		ID:           99,
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}, nil
}

func occupies(status string) bool {
	return status != "cancelled" && status != "declined"
}

func (r *fakeRepo) CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate := schedule.Interval{Start: ap.StartTime, End: ap.EndTime}

	for _, existing := range r.appointments {
		if existing.BarberID != ap.BarberID || !occupies(existing.Status) {
			continue
		}
		if candidate.Overlaps(schedule.Interval{Start: existing.StartTime, End: existing.EndTime}) {
			return domain.ConflictError{
				BarberID:      ap.BarberID,
				ConflictingID: existing.ID,
			}
		}
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, barbershopID, appointmentID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.ID == appointmentID && existing.BarbershopID == barbershopID {
			ap := existing
			return &ap, nil
		}
	}
	return nil, domain.NotFoundError{Entity: "appointment", ID: appointmentID}
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return domain.NotFoundError{Entity: "appointment", ID: ap.ID}
}

func (r *fakeRepo) ListAppointmentsForDay(ctx context.Context, barbershopID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarbershopID == barbershopID &&
			ap.StartTime.Before(dayEnd) && ap.EndTime.After(dayStart) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, barbershopID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarbershopID == barbershopID &&
			!ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) PopWaitingHead(ctx context.Context, barbershopID uint, date string) (*models.WaitingListEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	headIdx := -1
	for i, entry := range r.waiting {
		if entry.BarbershopID != barbershopID || entry.Date != date {
			continue
		}
		if headIdx == -1 || entry.RequestedAt.Before(r.waiting[headIdx].RequestedAt) {
			headIdx = i
		}
	}

	if headIdx == -1 {
		return nil, nil
	}

	head := r.waiting[headIdx]
	r.waiting = append(r.waiting[:headIdx], r.waiting[headIdx+1:]...)
	return &head, nil
}

// recordNotifier captura os eventos disparados pelos use cases.
type recordNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordNotifier) Notify(ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordNotifier) byKind(kind notify.EventKind) []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []notify.Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
