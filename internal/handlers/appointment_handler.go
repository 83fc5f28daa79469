package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER (painel do dono)
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	transition   *ucAppointment.TransitionAppointment
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	transition *ucAppointment.TransitionAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		transition:   transition,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	BarberID    uint   `json:"barber_id"` // 0 = auto
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var barberID uint64
	if s := c.Query("barber_id"); s != "" {
		barberID, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// Painel do dono enxerga o dia inteiro a partir de agora, sem
	// antecedência mínima
	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID:      barbershopID,
		ServiceID:         uint(serviceID),
		PreferredBarberID: uint(barberID),
		Date:              date,
		NotBefore:         time.Now(),
	})
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarbershopID: barbershopID,
		BarberID:     req.BarberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		OwnerBooked:  true,
		ActorID:      &actorID,
	})
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

// Transition devolve um handler amarrado a um status alvo fixo —
// rotas explícitas (/cancel, /complete, ...), máquina de estados única.
func (h *AppointmentHandler) Transition(target domain.Status) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.MustGet(middleware.ContextUserID).(uint)
		barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
			return
		}

		ap, err := h.transition.Execute(c.Request.Context(), ucAppointment.TransitionInput{
			BarbershopID:  barbershopID,
			AppointmentID: uint(id),
			Target:        target,
			ActorID:       &actorID,
		})
		if err != nil {
			httperr.FromEngine(c, err)
			return
		}

		httpresp.OK(c, ap)
	}
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), barbershopID, date)
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano/mês inválidos.")
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), barbershopID, year, month)
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	httpresp.List(c, items)
}
