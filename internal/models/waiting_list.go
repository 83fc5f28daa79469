package models

import "time"

// WaitingListEntry é a fila de espera de um dia, ordenada por
// RequestedAt (FIFO). Um cliente entra no máximo uma vez por dia.
type WaitingListEntry struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"uniqueIndex:idx_waiting_unique" json:"barbershop_id"`

	Date string `gorm:"size:10;uniqueIndex:idx_waiting_unique" json:"date"` // YYYY-MM-DD

	ClientID   uint   `gorm:"uniqueIndex:idx_waiting_unique" json:"client_id"`
	ClientName string `gorm:"size:100" json:"client_name"`

	RequestedAt time.Time `json:"requested_at"`
	CreatedAt   time.Time `json:"created_at"`
}
