package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/waitinglist"
	"github.com/BruksfildServices01/barber-agenda/internal/infra/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromEngine traduz os erros tipados do motor para HTTP. Mantém o
// código estável para o front decidir a mensagem.
func FromEngine(c *gin.Context, err error) {
	var (
		conflict   domain.ConflictError
		transition domain.InvalidTransitionError
		notFound   domain.NotFoundError
		queued     waitinglist.AlreadyQueuedError
		config     schedule.ConfigurationError
		business   BusinessError
	)

	switch {
	case errors.As(err, &conflict):
		Conflict(c, "time_conflict", "Horário acabou de ser ocupado. Escolha outro.")
	case errors.As(err, &transition):
		Conflict(c, "invalid_state", "Transição de status inválida.")
	case errors.As(err, &queued):
		Conflict(c, "already_queued", "Cliente já está na fila de espera deste dia.")
	case errors.As(err, &notFound):
		NotFound(c, "not_found", "Registro não encontrado.")
	case errors.As(err, &config):
		BadRequest(c, "invalid_working_hours", err.Error())
	case errors.Is(err, lock.ErrLockNotAcquired):
		Conflict(c, "time_conflict", "Horário em disputa. Tente novamente.")
	case errors.As(err, &business):
		BadRequest(c, business.Code, "Operação inválida.")
	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}
