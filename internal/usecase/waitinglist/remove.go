package waitinglist

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type Remove struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemove(repo domain.Repository, auditD *audit.Dispatcher) *Remove {
	return &Remove{repo: repo, audit: auditD}
}

func (uc *Remove) Execute(
	ctx context.Context,
	barbershopID uint,
	date string,
	clientID uint,
) error {

	if err := uc.repo.DeleteWaitingEntry(ctx, barbershopID, date, clientID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		Action:       "waiting_list_removed",
		Entity:       "waiting_list",
		Metadata:     map[string]any{"date": date, "client_id": clientID},
	})

	return nil
}

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(
	ctx context.Context,
	barbershopID uint,
	date string,
) ([]models.WaitingListEntry, error) {
	return uc.repo.ListWaitingEntries(ctx, barbershopID, date)
}
