package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrNoOrderItems        = errors.New("order has no items")
	ErrInvalidOrderItem    = errors.New("invalid order item")
	ErrInvalidDeliveryDays = errors.New("invalid delivery deadline days")
	ErrOrderNotEditable    = errors.New("order is outside its editable window")
	ErrOrderNotDeletable   = errors.New("order can no longer be deleted")
)

// OrderItemInput is a line requested by the caller; the product snapshot
// is resolved at read time, not taken from the request.
type OrderItemInput struct {
	ProductID  string
	Quantidade int
}

type CreateOrderInput struct {
	PrazoEntregaDias  int
	Fornecedor        string
	ContatoFornecedor string
	CreatedBy         string
	Items             []OrderItemInput
}

// ListOrderFilters are substring predicates over the rendered list. All
// supplied filters must match (logical AND); matching is case-insensitive
// against the order code, the pt-BR formatted creation date and the
// status label.
type ListOrderFilters struct {
	Codigo string
	Data   string
	Status string
}

// ClassifiedOrder pairs an order with its derived alert view.
type ClassifiedOrder struct {
	entities.Order
	entities.Classification
}

// IOrderUseCase exposes the purchase-order operations.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	ListOrders(ctx context.Context, filters ListOrderFilters) ([]ClassifiedOrder, error)
	GetOrder(ctx context.Context, id string) (ClassifiedOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	ReplaceItems(ctx context.Context, id string, items []OrderItemInput) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ExportOrdersCSV(ctx context.Context) (string, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
	now  func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if in.PrazoEntregaDias <= 0 {
		return entities.Order{}, ErrInvalidDeliveryDays
	}
	items, err := buildOrderItems(in.Items)
	if err != nil {
		return entities.Order{}, err
	}

	codes, err := u.repo.ListCodes(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	now := u.now().UTC()
	prazo := in.PrazoEntregaDias
	expected := now.AddDate(0, 0, prazo)

	o := entities.Order{
		ID:                  uuid.NewString(),
		Codigo:              NextOrderCode(codes),
		Status:              entities.OrderStatusEmitido,
		DataCriacao:         now,
		PrazoEntregaDias:    &prazo,
		DataPrevistaEntrega: &expected,
		Fornecedor:          strings.TrimSpace(in.Fornecedor),
		ContatoFornecedor:   strings.TrimSpace(in.ContatoFornecedor),
		CreatedBy:           strings.TrimSpace(in.CreatedBy),
	}
	for i := range items {
		items[i].OrderID = o.ID
	}

	created, err := u.repo.Create(ctx, o, items)
	if err != nil {
		return entities.Order{}, err
	}
	log.Info().Str("order_id", created.ID).Str("codigo", created.Codigo).Int("items", len(items)).Msg("order created")
	return created, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, filters ListOrderFilters) ([]ClassifiedOrder, error) {
	orders, err := u.repo.ListWithItems(ctx)
	if err != nil {
		return nil, err
	}
	return AssembleOrderList(orders, filters, u.now()), nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (ClassifiedOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ClassifiedOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return ClassifiedOrder{}, err
	}
	if o.ID == "" {
		return ClassifiedOrder{}, ErrOrderNotFound
	}
	return ClassifiedOrder{Order: o, Classification: entities.ClassifyOrder(o, u.now())}, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !isKnownStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	// Transitions are intentionally unrestricted: any status may follow
	// any other, matching the store-level behavior this service fronts.
	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Info().Str("order_id", id).Str("status", string(status)).Msg("order status updated")
	return updated, nil
}

func (u *OrderUseCase) ReplaceItems(ctx context.Context, id string, items []OrderItemInput) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	newItems, err := buildOrderItems(items)
	if err != nil {
		return entities.Order{}, err
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !o.IsEditable(u.now()) {
		return entities.Order{}, ErrOrderNotEditable
	}

	for i := range newItems {
		newItems[i].OrderID = o.ID
	}
	if err := u.repo.ReplaceItems(ctx, o.ID, newItems); err != nil {
		return entities.Order{}, err
	}
	log.Info().Str("order_id", o.ID).Int("items", len(newItems)).Msg("order items replaced")

	return u.repo.GetByID(ctx, o.ID)
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}
	if !o.IsDeletable(u.now()) {
		return ErrOrderNotDeletable
	}
	if err := u.repo.Delete(ctx, o.ID); err != nil {
		return err
	}
	log.Info().Str("order_id", o.ID).Str("codigo", o.Codigo).Msg("order deleted")
	return nil
}

// ExportOrdersCSV serializes every order item as one CSV row. Fields are
// comma-joined without quoting, so embedded commas are not escaped; the
// format is fixed by the consumers of the original export.
func (u *OrderUseCase) ExportOrdersCSV(ctx context.Context) (string, error) {
	orders, err := u.repo.ListWithItems(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Pedido,Código,Nome,Cor,Quantidade\n")
	for _, o := range orders {
		for _, it := range o.Items {
			b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%d\n", o.Codigo, it.Codigo, it.Nome, it.Cor, it.Quantidade))
		}
	}
	return b.String(), nil
}

// AssembleOrderList classifies, filters and sorts a batch of orders.
//
// today is fixed once per call so the whole batch shares one reference
// point. The sort is stable ascending on alert priority; orders with
// equal priority keep the load order (creation time descending).
func AssembleOrderList(orders []entities.Order, filters ListOrderFilters, today time.Time) []ClassifiedOrder {
	out := make([]ClassifiedOrder, 0, len(orders))
	for _, o := range orders {
		c := ClassifiedOrder{Order: o, Classification: entities.ClassifyOrder(o, today)}
		if matchesFilters(c, filters) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AlertColor.Priority() < out[j].AlertColor.Priority()
	})
	return out
}

func matchesFilters(c ClassifiedOrder, f ListOrderFilters) bool {
	if v := strings.TrimSpace(f.Codigo); v != "" && !containsFold(c.Codigo, v) {
		return false
	}
	if v := strings.TrimSpace(f.Data); v != "" && !containsFold(FormatDateBR(c.DataCriacao), v) {
		return false
	}
	if v := strings.TrimSpace(f.Status); v != "" && !containsFold(c.StatusDisplay, v) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// FormatDateBR renders a date the way the order list shows it.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// NextOrderCode produces the next sequence code from the existing ones:
// numeric suffix of the highest code plus one, zero-padded to two
// digits. Codes are monotonic, never reused and gaps are not filled.
// An empty catalog starts at "01".
func NextOrderCode(existing []string) string {
	max := 0
	for _, code := range existing {
		if n, ok := numericSuffix(code); ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%02d", max+1)
}

func numericSuffix(code string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, code)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func buildOrderItems(in []OrderItemInput) ([]entities.OrderItem, error) {
	if len(in) == 0 {
		return nil, ErrNoOrderItems
	}
	items := make([]entities.OrderItem, 0, len(in))
	for _, it := range in {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantidade <= 0 {
			return nil, ErrInvalidOrderItem
		}
		items = append(items, entities.OrderItem{
			ID:         uuid.NewString(),
			ProductID:  strings.TrimSpace(it.ProductID),
			Quantidade: it.Quantidade,
		})
	}
	return items, nil
}

func isKnownStatus(s entities.OrderStatus) bool {
	switch s {
	case entities.OrderStatusEmitido,
		entities.OrderStatusEnviadoFornecedor,
		entities.OrderStatusEmTransito,
		entities.OrderStatusCancelado,
		entities.OrderStatusDevolvido,
		entities.OrderStatusRecebido:
		return true
	}
	return false
}
