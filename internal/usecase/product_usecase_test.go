package usecase

import (
	"context"
	"errors"
	"testing"

	"sobujigangas/internal/domain/entities"
	mock_interfaces "sobujigangas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_CreateProduct(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), ProductInput{Nome: "Caneca"})
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("create computes markup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		uc.now = fixedNow

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.Codigo != "PR-1" {
					t.Fatalf("unexpected product: %+v", p)
				}
				if p.Markup != 100 {
					t.Fatalf("expected markup 100, got %v", p.Markup)
				}
				return p, nil
			},
		)

		_, err := uc.CreateProduct(context.Background(), ProductInput{
			Codigo:        " PR-1 ",
			Nome:          "Caneca",
			EstoqueAtual:  10,
			ValorUnitario: 5,
			ValorVenda:    10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProductUseCase_UpdateProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Product{}, nil)

		_, err := uc.UpdateProduct(context.Background(), "ghost", ProductInput{
			Codigo: "PR-1", Nome: "Caneca",
		})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("low stock flag survives the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)
		uc.now = fixedNow

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{
			ID: "p1", EstoqueBaixo: true,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID != "p1" || !p.EstoqueBaixo {
					t.Fatalf("update must not clear estoque_baixo: %+v", p)
				}
				return p, nil
			},
		)

		_, err := uc.UpdateProduct(context.Background(), "p1", ProductInput{
			Codigo: "PR-1", Nome: "Caneca",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProductUseCase_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(repo, nil)

	catalog := []entities.Product{
		{ID: "p1", Codigo: "PR-1", Nome: "Caneca Azul"},
		{ID: "p2", Codigo: "PR-2", Nome: "Chaveiro"},
	}

	t.Run("no search returns everything", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return(catalog, nil)
		out, err := uc.ListProducts(context.Background(), "")
		if err != nil || len(out) != 2 {
			t.Fatalf("unexpected result: %v %v", out, err)
		}
	})

	t.Run("search matches nome case-insensitively", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return(catalog, nil)
		out, err := uc.ListProducts(context.Background(), "caneca")
		if err != nil || len(out) != 1 || out[0].ID != "p1" {
			t.Fatalf("unexpected result: %v %v", out, err)
		}
	})

	t.Run("search matches codigo", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return(catalog, nil)
		out, err := uc.ListProducts(context.Background(), "pr-2")
		if err != nil || len(out) != 1 || out[0].ID != "p2" {
			t.Fatalf("unexpected result: %v %v", out, err)
		}
	})
}

func TestProductUseCase_RestockProduct(t *testing.T) {
	t.Run("invalid quantity", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.RestockProduct(context.Background(), "p1", 0, "ana")
		if !errors.Is(err, ErrInvalidStockValue) {
			t.Fatalf("expected ErrInvalidStockValue, got %v", err)
		}
	})

	t.Run("restock records an entrada movement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		movements := mock_interfaces.NewMockIStockMovementRepository(ctrl)
		uc := NewProductUseCase(repo, movements)
		uc.now = fixedNow

		repo.EXPECT().AdjustStock(gomock.Any(), "p1", 25).Return(entities.Product{ID: "p1", EstoqueAtual: 125}, nil)
		movements.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.StockMovement) (entities.StockMovement, error) {
				if m.Tipo != entities.MovementEntrada || m.Quantidade != 25 || m.CreatedBy != "ana" {
					t.Fatalf("unexpected movement: %+v", m)
				}
				return m, nil
			},
		)

		p, err := uc.RestockProduct(context.Background(), "p1", 25, " ana ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.EstoqueAtual != 125 {
			t.Fatalf("unexpected stock: %d", p.EstoqueAtual)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo, nil)

		repo.EXPECT().AdjustStock(gomock.Any(), "ghost", 5).Return(entities.Product{}, nil)

		_, err := uc.RestockProduct(context.Background(), "ghost", 5, "ana")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
