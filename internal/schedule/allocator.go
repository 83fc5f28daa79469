package schedule

import (
	"sort"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ======================================================
// Alocação de recursos (barbeiros)
// ======================================================

// EligibleBarbers devolve os barbeiros aptos ao atendimento, ordenados
// por id. Com preferred != 0 devolve só ele (se existir e estiver
// ativo). Qualquer barbeiro ativo executa qualquer serviço — não há
// vínculo barbeiro/serviço no modelo.
func EligibleBarbers(barbers []models.User, preferred uint) []models.User {
	active := make([]models.User, 0, len(barbers))
	for _, b := range barbers {
		if !b.Active {
			continue
		}
		if preferred != 0 && b.ID != preferred {
			continue
		}
		active = append(active, b)
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].ID < active[j].ID
	})

	return active
}

// nonTerminal: status que ocupam a agenda. Cancelados/recusados ficam
// no histórico mas não bloqueiam horário.
func occupiesSlot(status string) bool {
	switch status {
	case "cancelled", "declined":
		return false
	default:
		return true
	}
}

// BusyIntervals projeta os agendamentos de um barbeiro em intervalos
// ocupados [start, end), ordenados, ignorando status terminais de
// cancelamento.
func BusyIntervals(appointments []models.Appointment, barberID uint) []Interval {
	var busy []Interval
	for _, ap := range appointments {
		if ap.BarberID != barberID || !occupiesSlot(ap.Status) {
			continue
		}
		busy = append(busy, Interval{Start: ap.StartTime, End: ap.EndTime})
	}

	sort.Slice(busy, func(i, j int) bool {
		return busy[i].Start.Before(busy[j].Start)
	})

	return busy
}
