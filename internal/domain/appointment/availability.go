package appointment

import "time"

type AvailabilityInput struct {
	BarbershopID uint
	ServiceID    uint
	Date         time.Time // dia civil pedido; só ano/mês/dia contam

	// 0 = sem preferência (todos os barbeiros ativos entram)
	PreferredBarberID uint

	// Corte "não antes de": agora + antecedência mínima. O gerador de
	// slots não olha relógio — quem chama decide.
	NotBefore time.Time
}
