package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================
// Toda mutação de Appointment passa por aqui; handler e repositório
// nunca trocam status direto.

// Confirm marca um agendamento pendente como confirmado pelo dono.
func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

// Pay registra o resultado da captura externa de pagamento. O motor não
// chama API de pagamento — só grava o status resultante.
func Pay(ap *models.Appointment) error {
	if err := CanPay(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusPaid)
	return nil
}

// Complete conclui o atendimento e calcula a comissão do barbeiro
// sobre o preço do serviço.
func Complete(ap *models.Appointment, service *models.Service, barber *models.User, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	commission := service.Price * barber.CommissionPercent / 100
	ap.CommissionAmount = &commission
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// CancellationFee aplica a política da barbearia: multa quando o
// cancelamento acontece ESTRITAMENTE depois de start - limite. Cancelar
// exatamente no instante do limite ainda é grátis.
func CancellationFee(shop *models.Barbershop, service *models.Service, start time.Time, now time.Time) float64 {
	if !shop.CancelFeeEnabled {
		return 0
	}

	deadline := start.Add(-time.Duration(shop.CancelTimeLimitHours) * time.Hour)
	if !now.After(deadline) {
		return 0
	}

	return service.Price * shop.CancelFeePercent / 100
}

// Cancel cancela e grava a multa (zero quando fora da janela de
// penalidade).
func Cancel(ap *models.Appointment, shop *models.Barbershop, service *models.Service, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	fee := CancellationFee(shop, service, ap.StartTime, now)
	ap.CancellationFee = &fee
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Decline: dono recusa um pedido ainda pendente.
func Decline(ap *models.Appointment, now time.Time) error {
	if err := CanDecline(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDeclined)
	ap.CancelledAt = &now
	return nil
}

// FreesSlot: transições que liberam capacidade e disparam a checagem
// de promoção da fila de espera.
func FreesSlot(to Status) bool {
	return to == StatusCancelled || to == StatusDeclined
}
