package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWithDeadline(status OrderStatus, created time.Time, prazo int) Order {
	expected := created.AddDate(0, 0, prazo)
	return Order{
		ID:                  "ord-1",
		Codigo:              "01",
		Status:              status,
		DataCriacao:         created,
		PrazoEntregaDias:    &prazo,
		DataPrevistaEntrega: &expected,
	}
}

func TestClassifyOrder(t *testing.T) {
	today := time.Date(2026, 8, 30, 15, 42, 11, 0, time.UTC)

	tests := []struct {
		name    string
		order   Order
		color   AlertColor
		display string
	}{
		{
			name:    "cancelado is standby even when overdue",
			order:   orderWithDeadline(OrderStatusCancelado, today.AddDate(0, 0, -30), 5),
			color:   AlertStandby,
			display: "Cancelado",
		},
		{
			name:    "devolvido is standby",
			order:   orderWithDeadline(OrderStatusDevolvido, today.AddDate(0, 0, -1), 10),
			color:   AlertStandby,
			display: "Devolvido",
		},
		{
			name:    "recebido is sem_cor even when overdue",
			order:   orderWithDeadline(OrderStatusRecebido, today.AddDate(0, 0, -30), 5),
			color:   AlertSemCor,
			display: "Recebido",
		},
		{
			name:    "no deadline is sem_cor",
			order:   Order{Status: OrderStatusEmitido, DataCriacao: today},
			color:   AlertSemCor,
			display: "Emitido",
		},
		{
			name:    "one day overdue is atrasado",
			order:   orderWithDeadline(OrderStatusEmitido, today.AddDate(0, 0, -6), 5),
			color:   AlertAtrasado,
			display: "Atrasado",
		},
		{
			name:    "due today is aguardando, not atrasado",
			order:   orderWithDeadline(OrderStatusEmitido, today.AddDate(0, 0, -5), 5),
			color:   AlertAguardando,
			display: "Aguardando Entrega",
		},
		{
			name:    "due in two days is aguardando",
			order:   orderWithDeadline(OrderStatusEmitido, today.AddDate(0, 0, -3), 5),
			color:   AlertAguardando,
			display: "Aguardando Entrega",
		},
		{
			name:    "enviado_fornecedor two days old becomes em_transito",
			order:   orderWithDeadline(OrderStatusEnviadoFornecedor, today.AddDate(0, 0, -2), 10),
			color:   AlertEmTransito,
			display: "Em Trânsito",
		},
		{
			name:    "enviado_fornecedor one day old stays enviado",
			order:   orderWithDeadline(OrderStatusEnviadoFornecedor, today.AddDate(0, 0, -1), 10),
			color:   AlertEnviado,
			display: "Enviado ao Fornecedor",
		},
		{
			name:    "emitido three days old becomes em_transito",
			order:   orderWithDeadline(OrderStatusEmitido, today.AddDate(0, 0, -3), 10),
			color:   AlertEmTransito,
			display: "Em Trânsito",
		},
		{
			name:    "manual em_transito keeps em_transito",
			order:   orderWithDeadline(OrderStatusEmTransito, today, 10),
			color:   AlertEmTransito,
			display: "Em Trânsito",
		},
		{
			name:    "fresh emitido far from deadline is emitido",
			order:   orderWithDeadline(OrderStatusEmitido, today, 10),
			color:   AlertEmitido,
			display: "Emitido",
		},
		{
			name:    "unknown status falls through the date rules",
			order:   orderWithDeadline(OrderStatus("aprovado"), today, 10),
			color:   AlertEmitido,
			display: "Emitido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyOrder(tt.order, today)
			assert.Equal(t, tt.color, got.AlertColor)
			assert.Equal(t, tt.display, got.StatusDisplay)
		})
	}
}

func TestClassifyOrder_TimeOfDayIrrelevant(t *testing.T) {
	created := time.Date(2026, 8, 25, 23, 59, 0, 0, time.UTC)
	o := orderWithDeadline(OrderStatusEmitido, created, 5)

	morning := time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC)
	night := time.Date(2026, 8, 30, 23, 58, 0, 0, time.UTC)

	require.Equal(t, ClassifyOrder(o, morning), ClassifyOrder(o, night))
}

func TestClassifyOrder_DaysRemaining(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	o := orderWithDeadline(OrderStatusEmitido, today.AddDate(0, 0, -2), 5)
	c := ClassifyOrder(o, today)
	require.True(t, c.HasDeadline)
	assert.Equal(t, 3, c.DaysRemaining)

	overdue := orderWithDeadline(OrderStatusEmitido, today.AddDate(0, 0, -7), 5)
	c = ClassifyOrder(overdue, today)
	assert.Equal(t, -2, c.DaysRemaining)

	// Terminal orders still report the cosmetic day count.
	received := orderWithDeadline(OrderStatusRecebido, today.AddDate(0, 0, -2), 5)
	c = ClassifyOrder(received, today)
	require.True(t, c.HasDeadline)
	assert.Equal(t, 3, c.DaysRemaining)

	noDeadline := Order{Status: OrderStatusEmitido, DataCriacao: today}
	c = ClassifyOrder(noDeadline, today)
	assert.False(t, c.HasDeadline)
	assert.Zero(t, c.DaysRemaining)
}

func TestClassifyOrder_Idempotent(t *testing.T) {
	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	o := orderWithDeadline(OrderStatusEnviadoFornecedor, today.AddDate(0, 0, -4), 6)

	first := ClassifyOrder(o, today)
	second := ClassifyOrder(o, today)
	assert.Equal(t, first, second)
}

func TestAlertColorPriority(t *testing.T) {
	ordered := []AlertColor{
		AlertAtrasado,
		AlertAguardando,
		AlertEmTransito,
		AlertEnviado,
		AlertEmitido,
		AlertStandby,
		AlertSemCor,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Priority(), ordered[i].Priority())
	}
	assert.Greater(t, AlertColor("???").Priority(), AlertSemCor.Priority())
}
