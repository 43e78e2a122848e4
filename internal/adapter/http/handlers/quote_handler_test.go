package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insumos_xpto/internal/adapter/http/handlers/mocks"
	"insumos_xpto/internal/domain/entities"
	"insumos_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleQuote(status entities.QuoteStatus) entities.Quote {
	item := entities.NewLineItem("MET-PG450-030", "Jogo de lamina metalica PG450", decimal.NewFromInt(54), decimal.NewFromFloat(119.90))
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID:         "q-1",
		CustomerID: "c-1",
		MachineID:  "pg450",
		Items:      []entities.LineItem{item},
		Total:      item.LineTotal,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestQuoteHandler_AssembleQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.AssembleQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			AssembleQuote(gomock.Any(), "c-1", "pg450", gomock.Any()).
			Return(sampleQuote(entities.QuoteStatusPendente), nil)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.AssembleQuote)

		payload := `{"customer_id":"c-1","machine_id":"pg450","items":[{"sku":"MET-PG450-030","quantity":54,"unit_price":119.90}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != string(entities.QuoteStatusPendente) {
			t.Fatalf("expected status %s, got %v", entities.QuoteStatusPendente, body["status"])
		}
		if body["total"] != "6474.6" {
			t.Fatalf("expected total 6474.6, got %v", body["total"])
		}
	})

	t.Run("invalid items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().
			AssembleQuote(gomock.Any(), "c-1", "pg450", gomock.Any()).
			Return(entities.Quote{}, usecase.ErrInvalidQuoteItems)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.AssembleQuote)

		payload := `{"customer_id":"c-1","machine_id":"pg450","items":[{"sku":"X","quantity":1,"unit_price":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		path   string
		status entities.QuoteStatus
	}{
		{name: "approve", path: "/v1/quotes/approve", status: entities.QuoteStatusAprovado},
		{name: "reject", path: "/v1/quotes/reject", status: entities.QuoteStatusRejeitado},
		{name: "cancel", path: "/v1/quotes/cancel", status: entities.QuoteStatusCancelado},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(uc)

			r := gin.New()
			switch tc.name {
			case "approve":
				uc.EXPECT().ApproveByID(gomock.Any(), "q-1").Return(sampleQuote(tc.status), nil)
				r.PATCH(tc.path, h.ApproveQuote)
			case "reject":
				uc.EXPECT().RejectByID(gomock.Any(), "q-1").Return(sampleQuote(tc.status), nil)
				r.PATCH(tc.path, h.RejectQuote)
			case "cancel":
				uc.EXPECT().CancelByID(gomock.Any(), "q-1").Return(sampleQuote(tc.status), nil)
				r.PATCH(tc.path, h.CancelQuote)
			}

			req := httptest.NewRequest(http.MethodPatch, tc.path, bytes.NewBufferString(`{"quote_id":"q-1"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body["status"] != string(tc.status) {
				t.Fatalf("expected status %s, got %v", tc.status, body["status"])
			}
		})
	}

	t.Run("missing quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/approve", h.ApproveQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/approve", bytes.NewBufferString(`{"quote_id":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().ApproveByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/approve", h.ApproveQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/approve", bytes.NewBufferString(`{"quote_id":"missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(sampleQuote(entities.QuoteStatusPendente), nil)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
