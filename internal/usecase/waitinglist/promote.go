package waitinglist

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/schedule"
)

// PromoteNext tira o primeiro da fila (FIFO) e dispara a oferta pelo
// colaborador de notificação, carregando o barbeiro e a janela que
// vagaram para o cliente saber o que está sendo oferecido. NÃO cria
// agendamento: o cliente promovido passa pelo fluxo normal de reserva,
// porque o horário vago pode não bater com o pedido original dele.
type PromoteNext struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify notify.Notifier
}

func NewPromoteNext(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	notifier notify.Notifier,
) *PromoteNext {
	return &PromoteNext{repo: repo, audit: auditD, notify: notifier}
}

// Execute promove a cabeça da fila do dia. freedBarberID/freedSlot
// descrevem a vaga que abriu (zerados num disparo manual, sem vaga
// específica).
func (uc *PromoteNext) Execute(
	ctx context.Context,
	barbershopID uint,
	date string,
	freedBarberID uint,
	freedSlot schedule.Interval,
) (*models.WaitingListEntry, error) {

	head, err := uc.repo.PopWaitingHead(ctx, barbershopID, date)
	if err != nil {
		return nil, err
	}
	if head == nil {
		return nil, nil // fila vazia
	}

	uc.notify.Notify(notify.Event{
		Kind:         notify.EventPromotionOffered,
		BarbershopID: barbershopID,
		BarberID:     freedBarberID,
		ClientID:     head.ClientID,
		ClientName:   head.ClientName,
		Date:         date,
		StartTime:    freedSlot.Start,
		EndTime:      freedSlot.End,
	})

	meta := map[string]any{"date": date, "client_id": head.ClientID}
	if freedBarberID != 0 {
		meta["barber_id"] = freedBarberID
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		Action:       "waiting_list_promoted",
		Entity:       "waiting_list",
		EntityID:     &head.ID,
		Metadata:     meta,
	})

	return head, nil
}
