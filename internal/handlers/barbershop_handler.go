package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

type UpdateBarbershopConfigRequest struct {
	MinAdvanceMinutes  *int    `json:"min_advance_minutes"`
	SlotGranularityMin *int    `json:"slot_granularity_min"`
	Timezone           *string `json:"timezone"`

	CancelFeeEnabled     *bool    `json:"cancel_fee_enabled"`
	CancelFeePercent     *float64 `json:"cancel_fee_percent"`
	CancelTimeLimitHours *int     `json:"cancel_time_limit_hours"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	var req UpdateBarbershopConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		shop.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.SlotGranularityMin != nil {
		if *req.SlotGranularityMin < 5 || *req.SlotGranularityMin > 120 {
			httperr.BadRequest(c, "invalid_granularity", "Granularidade deve ficar entre 5 e 120 minutos.")
			return
		}
		shop.SlotGranularityMin = *req.SlotGranularityMin
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if req.CancelFeeEnabled != nil {
		shop.CancelFeeEnabled = *req.CancelFeeEnabled
	}
	if req.CancelFeePercent != nil {
		if *req.CancelFeePercent < 0 || *req.CancelFeePercent > 100 {
			httperr.BadRequest(c, "invalid_cancel_fee", "Percentual de multa deve ficar entre 0 e 100.")
			return
		}
		shop.CancelFeePercent = *req.CancelFeePercent
	}
	if req.CancelTimeLimitHours != nil {
		if *req.CancelTimeLimitHours < 0 {
			httperr.BadRequest(c, "invalid_cancel_limit", "Limite de horas deve ser zero ou positivo.")
			return
		}
		shop.CancelTimeLimitHours = *req.CancelTimeLimitHours
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar as configurações da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
