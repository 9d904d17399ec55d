package entities

import "time"

// AlertColor is the derived alert bucket shown next to each order.
// It is recomputed on every read and never persisted.

type AlertColor string

const (
	AlertEmitido    AlertColor = "emitido"
	AlertEnviado    AlertColor = "enviado"
	AlertEmTransito AlertColor = "em_transito"
	AlertAguardando AlertColor = "aguardando"
	AlertAtrasado   AlertColor = "atrasado"
	AlertStandby    AlertColor = "standby"
	AlertSemCor     AlertColor = "sem_cor"
)

// Priority orders alert colors for listing, most urgent first.
// Unknown colors sort last.
func (c AlertColor) Priority() int {
	switch c {
	case AlertAtrasado:
		return 1
	case AlertAguardando:
		return 2
	case AlertEmTransito:
		return 3
	case AlertEnviado:
		return 4
	case AlertEmitido:
		return 5
	case AlertStandby:
		return 6
	case AlertSemCor:
		return 7
	default:
		return 8
	}
}

// Classification is the derived view of an order: the alert color, the
// label shown to the user and the signed days until the expected
// delivery (negative means overdue). DaysRemaining is cosmetic on
// standby/terminal orders and zero when the order has no deadline.
type Classification struct {
	AlertColor    AlertColor
	StatusDisplay string
	DaysRemaining int
	HasDeadline   bool
}

// ClassifyOrder derives the alert color and display status of an order.
//
// today is an explicit input so the function is deterministic under test;
// it is normalized to midnight together with the order dates before any
// subtraction, otherwise the day diffs drift by one depending on the
// time of day the classifier runs.
//
// Rules are evaluated strictly top to bottom; the first match wins:
//
//  1. cancelado/devolvido  -> standby (manual label), no date logic
//  2. recebido             -> sem_cor "Recebido"
//  3. no delivery deadline -> sem_cor (manual label)
//  4. overdue              -> atrasado
//  5. due within 2 days    -> aguardando
//  6. enviado_fornecedor   -> em_transito after 2 days, else enviado
//  7. 3+ days old or manually em_transito -> em_transito
//  8. otherwise            -> emitido
//
// Terminal states must never be overridden by the date logic, and
// atrasado dominates aguardando at the boundary: daysUntilDelivery == 0
// is still aguardando, only strictly negative values are overdue.
// Unknown status values fall through the date branches as emitido would.
func ClassifyOrder(o Order, today time.Time) Classification {
	c := Classification{}
	if o.DataPrevistaEntrega != nil {
		c.HasDeadline = true
		c.DaysRemaining = daysBetween(today, *o.DataPrevistaEntrega)
	}

	switch o.Status {
	case OrderStatusCancelado, OrderStatusDevolvido:
		c.AlertColor = AlertStandby
		c.StatusDisplay = o.Status.Label()
		return c
	case OrderStatusRecebido:
		c.AlertColor = AlertSemCor
		c.StatusDisplay = "Recebido"
		return c
	}

	if o.PrazoEntregaDias == nil || o.DataPrevistaEntrega == nil {
		c.AlertColor = AlertSemCor
		c.StatusDisplay = o.Status.Label()
		return c
	}

	daysSinceCreation := daysBetween(o.DataCriacao, today)
	daysUntilDelivery := daysBetween(today, *o.DataPrevistaEntrega)

	switch {
	case daysUntilDelivery < 0:
		c.AlertColor = AlertAtrasado
		c.StatusDisplay = "Atrasado"
	case daysUntilDelivery <= 2:
		c.AlertColor = AlertAguardando
		c.StatusDisplay = "Aguardando Entrega"
	case o.Status == OrderStatusEnviadoFornecedor && daysSinceCreation >= 2:
		c.AlertColor = AlertEmTransito
		c.StatusDisplay = "Em Trânsito"
	case o.Status == OrderStatusEnviadoFornecedor:
		c.AlertColor = AlertEnviado
		c.StatusDisplay = "Enviado ao Fornecedor"
	case daysSinceCreation >= 3 || o.Status == OrderStatusEmTransito:
		c.AlertColor = AlertEmTransito
		c.StatusDisplay = "Em Trânsito"
	default:
		c.AlertColor = AlertEmitido
		c.StatusDisplay = "Emitido"
	}
	return c
}

// midnight strips the time of day, keeping the location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole days from a to b, both normalized to
// midnight. Negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)) / (24 * time.Hour))
}
