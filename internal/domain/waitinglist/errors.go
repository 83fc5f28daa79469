package waitinglist

import "fmt"

// AlreadyQueuedError: o cliente já está na fila daquele dia. Entrada
// duplicada falha explicitamente — o chamador avisa o usuário.
type AlreadyQueuedError struct {
	Date     string
	ClientID uint
}

func (e AlreadyQueuedError) Error() string {
	return fmt.Sprintf("client %d already on waiting list for %s", e.ClientID, e.Date)
}
