package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sobujigangas/internal/domain/entities"
	mock_interfaces "sobujigangas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSaleUseCase_FinalizeSale(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil, nil, nil)
		_, err := uc.FinalizeSale(context.Background(), FinalizeSaleInput{})
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil, nil, nil)
		_, err := uc.FinalizeSale(context.Background(), FinalizeSaleInput{
			Items: []SaleItemInput{{ProductID: "p1", Quantidade: -1}},
		})
		if !errors.Is(err, ErrInvalidSaleItem) {
			t.Fatalf("expected ErrInvalidSaleItem, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewSaleUseCase(nil, products, nil, nil)

		products.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Product{}, nil)

		_, err := uc.FinalizeSale(context.Background(), FinalizeSaleInput{
			Items: []SaleItemInput{{ProductID: "ghost", Quantidade: 1}},
		})
		if !errors.Is(err, ErrSaleProductNotFound) {
			t.Fatalf("expected ErrSaleProductNotFound, got %v", err)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewSaleUseCase(nil, products, nil, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{
			ID: "p1", Nome: "Caneca", EstoqueAtual: 2, ValorVenda: 10,
		}, nil)

		_, err := uc.FinalizeSale(context.Background(), FinalizeSaleInput{
			Items: []SaleItemInput{{ProductID: "p1", Quantidade: 3}},
		})
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("success without payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		movements := mock_interfaces.NewMockIStockMovementRepository(ctrl)
		uc := NewSaleUseCase(repo, products, movements, nil)
		uc.now = fixedNow

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{
			ID: "p1", Nome: "Caneca", EstoqueAtual: 10, ValorVenda: 12.5,
		}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p2").Return(entities.Product{
			ID: "p2", Nome: "Chaveiro", EstoqueAtual: 4, ValorVenda: 3,
		}, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale, items []entities.SaleItem) (entities.Sale, error) {
				if s.Total != 12.5*2+3*4 {
					t.Fatalf("unexpected total: %v", s.Total)
				}
				if s.Codigo == "" || s.Codigo[:2] != "VD" {
					t.Fatalf("unexpected codigo: %q", s.Codigo)
				}
				if len(items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(items))
				}
				if items[0].ValorUnitario != 12.5 || items[0].Subtotal != 25 || items[0].Nome != "Caneca" {
					t.Fatalf("unexpected frozen item: %+v", items[0])
				}
				return s, nil
			},
		)

		products.EXPECT().AdjustStock(gomock.Any(), "p1", -2).Return(entities.Product{ID: "p1"}, nil)
		products.EXPECT().AdjustStock(gomock.Any(), "p2", -4).Return(entities.Product{ID: "p2"}, nil)
		movements.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.StockMovement) (entities.StockMovement, error) {
				if m.Tipo != entities.MovementSaida || m.Quantidade <= 0 {
					t.Fatalf("unexpected movement: %+v", m)
				}
				return m, nil
			},
		).Times(2)

		res, err := uc.FinalizeSale(context.Background(), FinalizeSaleInput{
			CreatedBy: "ana",
			Items: []SaleItemInput{
				{ProductID: "p1", Quantidade: 2},
				{ProductID: "p2", Quantidade: 4},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProviderPaymentID != "" || res.ProviderStatus != "" {
			t.Fatalf("no gateway configured, got provider data: %+v", res)
		}
		if len(res.Sale.Items) != 2 {
			t.Fatalf("expected items on returned sale, got %d", len(res.Sale.Items))
		}
	})

	t.Run("payment payload with no gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewSaleUseCase(nil, products, nil, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{
			ID: "p1", EstoqueAtual: 5, ValorVenda: 10,
		}, nil)

		_, err := uc.FinalizeSale(context.Background(), FinalizeSaleInput{
			Items:          []SaleItemInput{{ProductID: "p1", Quantidade: 1}},
			PaymentPayload: json.RawMessage(`{"payment_method_id":"pix"}`),
		})
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("gateway amount is the cart total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		movements := mock_interfaces.NewMockIStockMovementRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(repo, products, movements, gateway)
		uc.now = fixedNow

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{
			ID: "p1", EstoqueAtual: 5, ValorVenda: 30,
		}, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload []byte) (string, string, []byte, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload sent to gateway: %v", err)
				}
				if req["transaction_amount"] != float64(60) {
					t.Fatalf("expected amount 60, got %v", req["transaction_amount"])
				}
				if req["payment_method_id"] != "pix" {
					t.Fatalf("caller fields must be forwarded, got %v", req)
				}
				return "mp-123", "approved", payload, nil
			},
		)

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale, items []entities.SaleItem) (entities.Sale, error) {
				return s, nil
			},
		)
		products.EXPECT().AdjustStock(gomock.Any(), "p1", -2).Return(entities.Product{ID: "p1"}, nil)
		movements.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.StockMovement{}, nil)

		res, err := uc.FinalizeSale(context.Background(), FinalizeSaleInput{
			Items:          []SaleItemInput{{ProductID: "p1", Quantidade: 2}},
			PaymentPayload: json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProviderPaymentID != "mp-123" || res.ProviderStatus != "approved" {
			t.Fatalf("unexpected provider data: %+v", res)
		}
	})

	t.Run("gateway failure aborts before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(nil, products, nil, gateway)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{
			ID: "p1", EstoqueAtual: 5, ValorVenda: 10,
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("declined"))

		_, err := uc.FinalizeSale(context.Background(), FinalizeSaleInput{
			Items:          []SaleItemInput{{ProductID: "p1", Quantidade: 1}},
			PaymentPayload: json.RawMessage(`{}`),
		})
		if err == nil || err.Error() != "declined" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}

func TestSaleUseCase_ListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISaleRepository(ctrl)
	uc := NewSaleUseCase(repo, nil, nil, nil)

	repo.EXPECT().ListWithItems(gomock.Any()).Return([]entities.Sale{{ID: "s1"}}, nil)

	sales, err := uc.ListSales(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 1 || sales[0].ID != "s1" {
		t.Fatalf("unexpected sales: %+v", sales)
	}
}
