package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/waitinglist"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
)

// Status que continuam ocupando agenda no banco.
var activeStatuses = []string{"pending", "confirmed", "paid", "completed"}

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "barbershop", ID: id}
		}
		return nil, err
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "barbershop"}
		}
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Opening hours / blocks
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWeekTemplate(
	ctx context.Context,
	barbershopID uint,
) (schedule.WeekTemplate, error) {

	var tpl schedule.WeekTemplate

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return tpl, err
	}

	for _, row := range rows {
		if row.Weekday < 0 || row.Weekday > 6 {
			continue
		}
		tpl[row.Weekday] = &schedule.DayWindows{
			MorningStart:   row.MorningStart,
			MorningEnd:     row.MorningEnd,
			AfternoonStart: row.AfternoonStart,
			AfternoonEnd:   row.AfternoonEnd,
		}
	}

	return tpl, nil
}

func (r *AppointmentGormRepository) GetBlockedDates(
	ctx context.Context,
	barbershopID uint,
) (map[string]bool, error) {

	var rows []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	blocked := make(map[string]bool, len(rows))
	for _, row := range rows {
		blocked[row.Date] = true
	}

	return blocked, nil
}

func (r *AppointmentGormRepository) ListBlockedSlots(
	ctx context.Context,
	barbershopID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]schedule.Interval, error) {

	var rows []models.BlockedTimeSlot
	if err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND start_time < ? AND end_time > ?",
			barbershopID, dayEnd, dayStart,
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(rows))
	for _, row := range rows {
		intervals = append(intervals, schedule.Interval{
			Start: row.StartTime,
			End:   row.EndTime,
		})
	}

	return intervals, nil
}

// --------------------------------------------------
// Service / Barber / Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ? AND active = true", serviceID, barbershopID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "service", ID: serviceID}
		}
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ? AND active = true", barberID, barbershopID).
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "barber", ID: barberID}
		}
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) ListBarbers(
	ctx context.Context,
	barbershopID uint,
) ([]models.User, error) {

	var barbers []models.User
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = true", barbershopID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointmentIfFree: revalidação + insert na MESMA transação,
// com lock de linha nos agendamentos do barbeiro. Dois commits
// simultâneos no mesmo horário — exatamente um vence.
func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicting models.Appointment
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.BarberID,
				activeStatuses,
				ap.EndTime,
				ap.StartTime,
			).
			First(&conflicting).Error

		if err == nil {
			return domain.ConflictError{
				BarberID:      ap.BarberID,
				ConflictingID: conflicting.ID,
			}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	barbershopID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", appointmentID, barbershopID).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "appointment", ID: appointmentID}
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByToken(
	ctx context.Context,
	token string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("manage_token = ?", token).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Entity: "appointment"}
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Availability / reporting
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barbershopID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND start_time < ? AND end_time > ?",
			barbershopID, dayEnd, dayStart,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"barbershop_id = ? AND start_time >= ? AND start_time < ?",
			barbershopID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Waiting list
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateWaitingEntry(
	ctx context.Context,
	entry *models.WaitingListEntry,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.Model(&models.WaitingListEntry{}).
			Where(
				"barbershop_id = ? AND date = ? AND client_id = ?",
				entry.BarbershopID, entry.Date, entry.ClientID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return waitinglist.AlreadyQueuedError{
				Date:     entry.Date,
				ClientID: entry.ClientID,
			}
		}

		return tx.Create(entry).Error
	})
}

func (r *AppointmentGormRepository) DeleteWaitingEntry(
	ctx context.Context,
	barbershopID uint,
	date string,
	clientID uint,
) error {

	return r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND date = ? AND client_id = ?",
			barbershopID, date, clientID,
		).
		Delete(&models.WaitingListEntry{}).Error
}

func (r *AppointmentGormRepository) ListWaitingEntries(
	ctx context.Context,
	barbershopID uint,
	date string,
) ([]models.WaitingListEntry, error) {

	var entries []models.WaitingListEntry
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND date = ?", barbershopID, date).
		Order("requested_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *AppointmentGormRepository) PopWaitingHead(
	ctx context.Context,
	barbershopID uint,
	date string,
) (*models.WaitingListEntry, error) {

	var head *models.WaitingListEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var entry models.WaitingListEntry
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("barbershop_id = ? AND date = ?", barbershopID, date).
			Order("requested_at ASC").
			First(&entry).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}

		head = &entry
		return nil
	})

	if err != nil {
		return nil, err
	}

	return head, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
