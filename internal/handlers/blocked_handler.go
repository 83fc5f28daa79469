package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ======================================================
// HANDLER — bloqueios de agenda (dia inteiro e faixas)
// ======================================================

type BlockedHandler struct {
	db *gorm.DB
}

func NewBlockedHandler(db *gorm.DB) *BlockedHandler {
	return &BlockedHandler{db: db}
}

// --------- Requests ---------

type CreateBlockedDateRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

type CreateBlockedSlotRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`   // HH:mm
	Reason    string `json:"reason"`
}

// ======================================================
// BLOCKED DATES
// ======================================================

func (h *BlockedHandler) ListDates(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var dates []models.BlockedDate
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("date ASC").
		Find(&dates).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocked_dates", "Erro ao listar datas bloqueadas.")
		return
	}

	c.JSON(http.StatusOK, dates)
}

func (h *BlockedHandler) CreateDate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	blocked := models.BlockedDate{
		BarbershopID: barbershopID,
		Date:         req.Date,
		Reason:       req.Reason,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_block_date", "Erro ao bloquear data.")
		return
	}

	c.JSON(http.StatusCreated, blocked)
}

func (h *BlockedHandler) DeleteDate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	result := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Delete(&models.BlockedDate{})

	if result.Error != nil {
		httperr.Internal(c, "failed_to_unblock_date", "Erro ao desbloquear data.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_date_not_found", "Bloqueio não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// BLOCKED TIME SLOTS
// ======================================================

func (h *BlockedHandler) ListSlots(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var slots []models.BlockedTimeSlot
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocked_slots", "Erro ao listar bloqueios.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *BlockedHandler) CreateSlot(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	loc := locationFromShop(&shop)

	start, err1 := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.StartTime, loc)
	end, err2 := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.EndTime, loc)
	if err1 != nil || err2 != nil || !start.Before(end) {
		httperr.BadRequest(c, "invalid_time_range", "Intervalo de horário inválido.")
		return
	}

	blocked := models.BlockedTimeSlot{
		BarbershopID: barbershopID,
		StartTime:    start,
		EndTime:      end,
		Reason:       req.Reason,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_block_slot", "Erro ao bloquear horário.")
		return
	}

	c.JSON(http.StatusCreated, blocked)
}

func (h *BlockedHandler) DeleteSlot(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	result := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Delete(&models.BlockedTimeSlot{})

	if result.Error != nil {
		httperr.Internal(c, "failed_to_unblock_slot", "Erro ao remover bloqueio.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_slot_not_found", "Bloqueio não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
