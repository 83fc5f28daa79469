package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusDeclined  Status = "declined"
)

// IsTerminal: estados finais nunca transicionam de novo.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusDeclined:
		return true
	}
	return false
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid,
		StatusCompleted, StatusCancelled, StatusDeclined:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanConfirm define se um agendamento pode ser confirmado
func CanConfirm(current Status) error {
	if current != StatusPending {
		return InvalidTransitionError{From: current, To: StatusConfirmed}
	}
	return nil
}

// CanPay define se o pagamento externo pode ser registrado
func CanPay(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return InvalidTransitionError{From: current, To: StatusPaid}
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	switch current {
	case StatusPending, StatusConfirmed, StatusPaid:
		return nil
	}
	return InvalidTransitionError{From: current, To: StatusCompleted}
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	switch current {
	case StatusPending, StatusConfirmed, StatusPaid:
		return nil
	}
	return InvalidTransitionError{From: current, To: StatusCancelled}
}

// CanDecline: recusa só vale antes da confirmação
func CanDecline(current Status) error {
	if current != StatusPending {
		return InvalidTransitionError{From: current, To: StatusDeclined}
	}
	return nil
}

// InitialStatus: fluxo público entra como pending; agendamento feito
// pelo próprio dono já nasce confirmado.
func InitialStatus(ownerBooked bool) Status {
	if ownerBooked {
		return StatusConfirmed
	}
	return StatusPending
}
