package appointment

import "fmt"

// ConflictError: o horário deixou de estar livre entre a listagem e o
// commit. Recuperável — o chamador reconsulta e oferece outro slot ou
// a fila de espera.
type ConflictError struct {
	BarberID      uint
	ConflictingID uint
}

func (e ConflictError) Error() string {
	return fmt.Sprintf(
		"barber %d already booked (appointment %d overlaps)",
		e.BarberID, e.ConflictingID,
	)
}

// InvalidTransitionError: transição a partir de estado terminal ou
// incompatível. Erro de uso, não se repete a chamada.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition appointment from %s to %s", e.From, e.To)
}

// NotFoundError: id referenciado não existe.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}
