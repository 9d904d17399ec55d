package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sobujigangas/internal/adapter/http/handlers/mocks"
	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func setupOrderRouter(uc usecase.IOrderUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOrderHandler(uc)
	r.POST("/pedidos", h.CreateOrder)
	r.GET("/pedidos", h.ListOrders)
	r.GET("/pedidos/export", h.ExportOrdersCSV)
	r.GET("/pedidos/:id", h.GetOrder)
	r.PATCH("/pedidos/:id/status", h.UpdateStatus)
	r.PUT("/pedidos/:id/items", h.ReplaceItems)
	r.DELETE("/pedidos/:id", h.DeleteOrder)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := setupOrderRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString(`{"prazo_entrega_dias":`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := setupOrderRouter(uc)

		prazo := 5
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateOrderInput) (entities.Order, error) {
				if in.PrazoEntregaDias != 5 || len(in.Items) != 1 || in.Items[0].ProductID != "p1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Order{
					ID:               "ord-1",
					Codigo:           "03",
					Status:           entities.OrderStatusEmitido,
					DataCriacao:      time.Now().UTC(),
					PrazoEntregaDias: &prazo,
				}, nil
			},
		)

		body := `{"prazo_entrega_dias":5,"fornecedor":"ACME","items":[{"product_id":"p1","quantidade":3}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"codigo":"03"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := setupOrderRouter(uc)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidDeliveryDays)

		body := `{"prazo_entrega_dias":-1,"items":[{"product_id":"p1","quantidade":3}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := setupOrderRouter(uc)

	prazo := 5
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	expected := created.AddDate(0, 0, prazo)
	uc.EXPECT().ListOrders(gomock.Any(), usecase.ListOrderFilters{
		Codigo: "03",
		Data:   "30/08/2026",
		Status: "atrasado",
	}).Return([]usecase.ClassifiedOrder{
		{
			Order: entities.Order{
				ID:                  "ord-1",
				Codigo:              "03",
				Status:              entities.OrderStatusEmitido,
				DataCriacao:         created,
				PrazoEntregaDias:    &prazo,
				DataPrevistaEntrega: &expected,
			},
			Classification: entities.Classification{
				AlertColor:    entities.AlertAtrasado,
				StatusDisplay: "Atrasado",
				HasDeadline:   true,
				DaysRemaining: -2,
			},
		},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pedidos?codigo=03&data=30%2F08%2F2026&status=atrasado", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"alerta_cor":"atrasado"`) || !strings.Contains(body, `"dias_restantes":-2`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if !strings.Contains(body, `"data_criacao_br":"30/08/2026"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := setupOrderRouter(uc)

		uc.EXPECT().GetOrder(gomock.Any(), "ghost").Return(usecase.ClassifiedOrder{}, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pedidos/ghost", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "ORDER_NOT_FOUND") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := setupOrderRouter(uc)

	uc.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusRecebido).Return(entities.Order{
		ID:     "ord-1",
		Status: entities.OrderStatusRecebido,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/pedidos/ord-1/status", bytes.NewBufferString(`{"status":"recebido"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"recebido"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestOrderHandler_ReplaceItems(t *testing.T) {
	t.Run("outside window maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := setupOrderRouter(uc)

		uc.EXPECT().ReplaceItems(gomock.Any(), "ord-1", gomock.Any()).Return(entities.Order{}, usecase.ErrOrderNotEditable)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/pedidos/ord-1/items", bytes.NewBufferString(`{"items":[{"product_id":"p1","quantidade":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "ORDER_NOT_EDITABLE") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := setupOrderRouter(uc)

		uc.EXPECT().DeleteOrder(gomock.Any(), "ord-1").Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/pedidos/ord-1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("outside window maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := setupOrderRouter(uc)

		uc.EXPECT().DeleteOrder(gomock.Any(), "ord-1").Return(usecase.ErrOrderNotDeletable)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/pedidos/ord-1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ExportOrdersCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := setupOrderRouter(uc)

	csv := "Pedido,Código,Nome,Cor,Quantidade\n01,PR-1,Caneca,Azul,10\n"
	uc.EXPECT().ExportOrdersCSV(gomock.Any()).Return(csv, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pedidos/export", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="pedidos.csv"` {
		t.Fatalf("unexpected disposition: %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if w.Body.String() != csv {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
