package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
	ucWaiting "github.com/BruksfildServices01/barber-agenda/internal/usecase/waitinglist"
)

// ======================================================
// HANDLER — fila de espera (painel do dono)
// ======================================================

type WaitingListHandler struct {
	list    *ucWaiting.List
	remove  *ucWaiting.Remove
	promote *ucWaiting.PromoteNext
}

func NewWaitingListHandler(
	list *ucWaiting.List,
	remove *ucWaiting.Remove,
	promote *ucWaiting.PromoteNext,
) *WaitingListHandler {
	return &WaitingListHandler{
		list:    list,
		remove:  remove,
		promote: promote,
	}
}

func (h *WaitingListHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	entries, err := h.list.Execute(c.Request.Context(), barbershopID, date)
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	httpresp.List(c, entries)
}

func (h *WaitingListHandler) Remove(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date := c.Query("date")
	clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
	if date == "" || err != nil {
		httperr.BadRequest(c, "invalid_request", "Data e cliente obrigatórios.")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), barbershopID, date, uint(clientID)); err != nil {
		httperr.FromEngine(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Promote: disparo manual da oferta (a automática acontece no
// cancelamento). Sem vaga específica aqui, então barbeiro e janela vão
// zerados.
func (h *WaitingListHandler) Promote(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	entry, err := h.promote.Execute(c.Request.Context(), barbershopID, date, 0, schedule.Interval{})
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}
	if entry == nil {
		c.JSON(http.StatusOK, gin.H{"promoted": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"promoted": entry})
}
