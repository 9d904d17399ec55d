package usecase

import (
	"context"
	"errors"
	"testing"

	"sobujigangas/internal/domain/entities"
	mock_interfaces "sobujigangas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStockAlertUseCase_ListAlertedProducts(t *testing.T) {
	t.Run("only yellow and red bands are listed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockAlertRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockAlertUseCase(repo, products)

		products.EXPECT().List(gomock.Any()).Return([]entities.Product{
			{ID: "p1", Nome: "Caneca", EstoqueAtual: 700},
			{ID: "p2", Nome: "Chaveiro", EstoqueAtual: 300},
			{ID: "p3", Nome: "Caneta", EstoqueAtual: 50},
		}, nil)
		// No saved ranges, every product falls back to the defaults.
		repo.EXPECT().GetByProductID(gomock.Any(), gomock.Any()).Return(entities.StockAlert{}, nil).Times(3)

		out, err := uc.ListAlertedProducts(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 alerted products, got %d", len(out))
		}
		if out[0].ID != "p2" || out[0].Status.Color != entities.StockAmarelo {
			t.Fatalf("unexpected first entry: %+v", out[0])
		}
		if out[1].ID != "p3" || out[1].Status.Color != entities.StockVermelho {
			t.Fatalf("unexpected second entry: %+v", out[1])
		}
	})

	t.Run("saved ranges override the defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockAlertRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockAlertUseCase(repo, products)

		products.EXPECT().List(gomock.Any()).Return([]entities.Product{
			{ID: "p1", Nome: "Caneca", EstoqueAtual: 700},
		}, nil)
		repo.EXPECT().GetByProductID(gomock.Any(), "p1").Return(entities.StockAlert{
			ID:               "a1",
			ProductID:        "p1",
			NivelVerdeMin:    2001,
			NivelVerdeMax:    5000,
			NivelAmareloMin:  1001,
			NivelAmareloMax:  2000,
			NivelVermelhoMax: 1000,
		}, nil)

		out, err := uc.ListAlertedProducts(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].Status.Color != entities.StockVermelho {
			t.Fatalf("expected p1 vermelho under custom ranges, got %+v", out)
		}
	})

	t.Run("search filters by nome or codigo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockAlertRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockAlertUseCase(repo, products)

		products.EXPECT().List(gomock.Any()).Return([]entities.Product{
			{ID: "p1", Codigo: "PR-1", Nome: "Caneca", EstoqueAtual: 10},
			{ID: "p2", Codigo: "PR-2", Nome: "Chaveiro", EstoqueAtual: 10},
		}, nil)
		repo.EXPECT().GetByProductID(gomock.Any(), "p1").Return(entities.StockAlert{}, nil)

		out, err := uc.ListAlertedProducts(context.Background(), "caneca")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "p1" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}

func TestStockAlertUseCase_SaveAlertRanges(t *testing.T) {
	validInput := AlertRangesInput{
		NivelVerdeMin:    101,
		NivelVerdeMax:    500,
		NivelAmareloMin:  51,
		NivelAmareloMax:  100,
		NivelVermelhoMax: 50,
	}

	t.Run("inverted range", func(t *testing.T) {
		uc := NewStockAlertUseCase(nil, nil)
		in := validInput
		in.NivelVerdeMin = 600
		_, err := uc.SaveAlertRanges(context.Background(), "p1", in)
		if !errors.Is(err, ErrInvalidAlertRanges) {
			t.Fatalf("expected ErrInvalidAlertRanges, got %v", err)
		}
	})

	t.Run("negative red threshold", func(t *testing.T) {
		uc := NewStockAlertUseCase(nil, nil)
		in := validInput
		in.NivelVermelhoMax = -1
		_, err := uc.SaveAlertRanges(context.Background(), "p1", in)
		if !errors.Is(err, ErrInvalidAlertRanges) {
			t.Fatalf("expected ErrInvalidAlertRanges, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockAlertUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Product{}, nil)

		_, err := uc.SaveAlertRanges(context.Background(), "ghost", validInput)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("upsert keeps the existing alert id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockAlertRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockAlertUseCase(repo, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)
		repo.EXPECT().GetByProductID(gomock.Any(), "p1").Return(entities.StockAlert{ID: "a1", ProductID: "p1"}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.StockAlert) (entities.StockAlert, error) {
				if a.ID != "a1" || a.NivelVermelhoMax != 50 {
					t.Fatalf("unexpected alert: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.SaveAlertRanges(context.Background(), "p1", validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("first save mints a new id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockAlertRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockAlertUseCase(repo, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)
		repo.EXPECT().GetByProductID(gomock.Any(), "p1").Return(entities.StockAlert{}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.StockAlert) (entities.StockAlert, error) {
				if a.ID == "" {
					t.Fatalf("expected a generated id")
				}
				return a, nil
			},
		)

		if _, err := uc.SaveAlertRanges(context.Background(), "p1", validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestStockAlertUseCase_RefreshLowStockFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIStockAlertRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewStockAlertUseCase(repo, products)

	products.EXPECT().List(gomock.Any()).Return([]entities.Product{
		{ID: "p1", EstoqueAtual: 50, EstoqueBaixo: false}, // red, flag must turn on
		{ID: "p2", EstoqueAtual: 700, EstoqueBaixo: true}, // green, flag must turn off
		{ID: "p3", EstoqueAtual: 100, EstoqueBaixo: true}, // red, already flagged
	}, nil)
	repo.EXPECT().GetByProductID(gomock.Any(), gomock.Any()).Return(entities.StockAlert{}, nil).Times(3)
	products.EXPECT().SetLowStockFlag(gomock.Any(), "p1", true).Return(nil)
	products.EXPECT().SetLowStockFlag(gomock.Any(), "p2", false).Return(nil)

	changed, err := uc.RefreshLowStockFlags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 2 {
		t.Fatalf("expected 2 changed flags, got %d", changed)
	}
}
