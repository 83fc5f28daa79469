package schedule

import "fmt"

// ConfigurationError indica template de horário inválido. É devolvido
// para a UI de configuração do dono — nunca corrigido silenciosamente.
type ConfigurationError struct {
	Weekday int
	Reason  string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid opening hours for weekday %d: %s", e.Weekday, e.Reason)
}
