package notify

import "log"

// Dispatcher entrega eventos em background por um canal com buffer.
// Notificação nunca pode derrubar ou atrasar o fluxo de agendamento:
// fila cheia → descarta e loga.
type Dispatcher struct {
	sink  Notifier
	queue chan Event
}

func NewDispatcher(sink Notifier) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.sink.Notify(ev)
	}
}

func (d *Dispatcher) Notify(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event", ev.Kind)
	}
}

// LogNotifier é a implementação padrão enquanto não há integração de
// entrega plugada.
type LogNotifier struct{}

func (LogNotifier) Notify(ev Event) {
	log.Printf(
		"notify: kind=%s shop=%d appointment=%d barber=%d client=%d status=%s",
		ev.Kind, ev.BarbershopID, ev.AppointmentID, ev.BarberID, ev.ClientID, ev.Status,
	)
}

var _ Notifier = (*Dispatcher)(nil)
var _ Notifier = LogNotifier{}
