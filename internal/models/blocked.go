package models

import "time"

// BlockedDate fecha a barbearia o dia inteiro, ignorando o template.
type BlockedDate struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	Date   string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD no fuso da barbearia
	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

// BlockedTimeSlot bloqueia um intervalo absoluto [start, end) para
// todos os barbeiros. Intervalos podem se sobrepor entre si.
type BlockedTimeSlot struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
