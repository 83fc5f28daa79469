package waitinglist

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// Enqueue coloca o cliente na fila do dia. Entrada duplicada devolve
// AlreadyQueuedError — quem chama decide a mensagem.
type Enqueue struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEnqueue(repo domain.Repository, auditD *audit.Dispatcher) *Enqueue {
	return &Enqueue{repo: repo, audit: auditD}
}

func (uc *Enqueue) Execute(
	ctx context.Context,
	barbershopID uint,
	date string,
	clientID uint,
	clientName string,
) (*models.WaitingListEntry, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	entry := &models.WaitingListEntry{
		BarbershopID: barbershopID,
		Date:         date,
		ClientID:     clientID,
		ClientName:   clientName,
		RequestedAt:  timezone.NowIn(shop.Timezone),
	}

	if err := uc.repo.CreateWaitingEntry(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		Action:       "waiting_list_enqueued",
		Entity:       "waiting_list",
		EntityID:     &entry.ID,
		Metadata:     map[string]any{"date": date, "client_id": clientID},
	})

	return entry, nil
}
