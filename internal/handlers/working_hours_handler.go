package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday        int    `json:"weekday" binding:"min=0,max=6"`
	MorningStart   string `json:"morning_start"`
	MorningEnd     string `json:"morning_end"`
	AfternoonStart string `json:"afternoon_start"`
	AfternoonEnd   string `json:"afternoon_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var hours []models.WorkingHours
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Template inválido é rejeitado AQUI, na borda — nunca chega no
	// gerador de slots
	var tpl schedule.WeekTemplate
	for _, d := range req.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
			return
		}
		tpl[d.Weekday] = &schedule.DayWindows{
			MorningStart:   d.MorningStart,
			MorningEnd:     d.MorningEnd,
			AfternoonStart: d.AfternoonStart,
			AfternoonEnd:   d.AfternoonEnd,
		}
	}

	if err := tpl.Validate(); err != nil {
		httperr.FromEngine(c, err)
		return
	}

	if err := h.db.Where("barbershop_id = ?", barbershopID).Delete(&models.WorkingHours{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Erro ao limpar horários.")
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingHours{
			BarbershopID:   barbershopID,
			Weekday:        d.Weekday,
			MorningStart:   d.MorningStart,
			MorningEnd:     d.MorningEnd,
			AfternoonStart: d.AfternoonStart,
			AfternoonEnd:   d.AfternoonEnd,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar horários.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
