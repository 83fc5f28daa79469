package audit

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Trilha de auditoria das ações do motor (criação, transições de
// status, promoções de fila). Gravação assíncrona: auditoria nunca
// quebra a API.

type Event struct {
	BarbershopID uint
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

type Dispatcher struct {
	db    *gorm.DB
	queue chan Event
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.persist(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) persist(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		BarbershopID: ev.BarbershopID,
		UserID:       ev.UserID,
		Action:       ev.Action,
		Entity:       ev.Entity,
		EntityID:     ev.EntityID,
		Metadata:     metaJSON,
	}

	return d.db.Create(&row).Error
}

func (d *Dispatcher) Dispatch(ev Event) {
	// dispatcher nil = auditoria desligada
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}
