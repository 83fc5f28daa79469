package notify

import "time"

// Eventos que o motor dispara. Entrega (push/WhatsApp/e-mail) é
// responsabilidade do colaborador externo — aqui é fire-and-forget.

type EventKind string

const (
	EventBookingCreated   EventKind = "booking_created"
	EventStatusChanged    EventKind = "status_changed"
	EventPromotionOffered EventKind = "promotion_offered"
)

type Event struct {
	Kind EventKind

	BarbershopID  uint
	AppointmentID uint
	BarberID      uint
	ClientID      uint
	ClientName    string

	Status string // novo status, quando Kind == EventStatusChanged
	Date   string // dia da oferta, quando Kind == EventPromotionOffered

	// janela do horário: a vaga liberada, numa oferta de promoção
	StartTime time.Time
	EndTime   time.Time
}

type Notifier interface {
	Notify(ev Event)
}
