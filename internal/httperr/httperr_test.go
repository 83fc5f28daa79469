package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/waitinglist"
	"github.com/BruksfildServices01/barber-agenda/internal/infra/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
)

func TestFromEngine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"conflito de horario", domain.ConflictError{BarberID: 1, ConflictingID: 9}, http.StatusConflict, "time_conflict"},
		{"transicao invalida", domain.InvalidTransitionError{From: domain.StatusCompleted, To: domain.StatusCancelled}, http.StatusConflict, "invalid_state"},
		{"fila duplicada", waitinglist.AlreadyQueuedError{Date: "2030-01-07", ClientID: 5}, http.StatusConflict, "already_queued"},
		{"nao encontrado", domain.NotFoundError{Entity: "service", ID: 7}, http.StatusNotFound, "not_found"},
		{"template invalido", schedule.ConfigurationError{Weekday: 1, Reason: "x"}, http.StatusBadRequest, "invalid_working_hours"},
		{"lock em disputa", lock.ErrLockNotAcquired, http.StatusConflict, "time_conflict"},
		{"erro de negocio", ErrBusiness("too_soon"), http.StatusBadRequest, "too_soon"},
		{"erro desconhecido", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromEngine(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(ErrBusiness("too_soon"), "too_soon"))
	assert.False(t, IsBusiness(ErrBusiness("too_soon"), "no_barber_available"))
	assert.False(t, IsBusiness(errors.New("boom"), "too_soon"))
}
