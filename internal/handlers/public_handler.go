package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-agenda/internal/usecase/appointment"
	ucWaiting "github.com/BruksfildServices01/barber-agenda/internal/usecase/waitinglist"
)

////////////////////////////////////////////////////////
// HANDLER (booking do cliente, sem login, por slug)
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	repo         domain.Repository
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	transition   *ucAppointment.TransitionAppointment
	enqueue      *ucWaiting.Enqueue
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	transition *ucAppointment.TransitionAppointment,
	enqueue *ucWaiting.Enqueue,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		repo:         repo,
		availability: availability,
		create:       create,
		transition:   transition,
		enqueue:      enqueue,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	BarberID    uint   `json:"barber_id"` // 0 = qualquer barbeiro livre
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

type PublicWaitingListRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
}

func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.Barbershop, bool) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}
	return &shop, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("barbershop_id = ? AND active = true", shop.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"services":   services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

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
		if barberID, err = strconv.ParseUint(s, 10, 64); err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
	}

	date, err := parseDateInShop(shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// Cliente só enxerga horários respeitando a antecedência mínima
	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}
	notBefore := nowInShop(shop).Add(time.Duration(minAdvance) * time.Minute)

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID:      shop.ID,
		ServiceID:         uint(serviceID),
		PreferredBarberID: uint(barberID),
		Date:              date,
		NotBefore:         notBefore,
	})
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	httpresp.List(c, slots)
}

////////////////////////////////////////////////////////
// CREATE / CANCEL (por manage token)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarbershopID: shop.ID,
		BarberID:     req.BarberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		OwnerBooked:  false,
	})
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment":  ap,
		"manage_token": ap.ManageToken,
	})
}

func (h *PublicHandler) CancelByToken(c *gin.Context) {
	token := c.Param("token")

	ap, err := h.repo.GetAppointmentByToken(c.Request.Context(), token)
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	updated, err := h.transition.Execute(c.Request.Context(), ucAppointment.TransitionInput{
		BarbershopID:  ap.BarbershopID,
		AppointmentID: ap.ID,
		Target:        domain.StatusCancelled,
	})
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           updated.Status,
		"cancellation_fee": updated.CancellationFee,
	})
}

////////////////////////////////////////////////////////
// WAITING LIST (dia lotado)
////////////////////////////////////////////////////////

func (h *PublicHandler) JoinWaitingList(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicWaitingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.repo.GetOrCreateClient(
		c.Request.Context(),
		shop.ID,
		req.ClientName,
		req.ClientPhone,
		"",
	)
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	entry, err := h.enqueue.Execute(
		c.Request.Context(),
		shop.ID,
		req.Date,
		client.ID,
		client.Name,
	)
	if err != nil {
		httperr.FromEngine(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}
