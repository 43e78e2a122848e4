package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"insumos_xpto/internal/adapter/http/handlers/mocks"
	"insumos_xpto/internal/domain/entities"
	"insumos_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLegacyQuoteHandler_BuildLegacyQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILegacyQuoteUseCase(ctrl)
		h := NewLegacyQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/legacy", h.BuildLegacyQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/legacy", bytes.NewBufferString("{"))
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
		uc := mocks.NewMockILegacyQuoteUseCase(ctrl)
		items := []entities.LineItem{
			entities.NewLineItem("MET-PG450-030", "Jogo de lamina metalica PG450", decimal.NewFromInt(54), decimal.NewFromFloat(119.90)),
			entities.NewLineItem("RES-PG450-100", "Jogo de lamina resinada PG450", decimal.NewFromInt(18), decimal.NewFromFloat(69.90)),
			entities.NewLineItem("END-LIT-001", "Endurecedor de superficie (litro)", decimal.NewFromInt(30), decimal.NewFromFloat(38.90)),
		}
		uc.EXPECT().
			BuildLineItems("pg450", 1200.0, 4).
			Return(items, nil)
		h := NewLegacyQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/legacy", h.BuildLegacyQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/legacy", bytes.NewBufferString(`{"machine_id":"pg450","area_m2":1200,"quality_grade":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			MachineID string `json:"machine_id"`
			Items     []struct {
				SKU       string `json:"sku"`
				Quantity  string `json:"quantity"`
				LineTotal string `json:"line_total"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.MachineID != "pg450" {
			t.Fatalf("expected machine pg450, got %s", body.MachineID)
		}
		if len(body.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(body.Items))
		}
		if body.Items[0].Quantity != "54" {
			t.Fatalf("expected metallic quantity 54, got %s", body.Items[0].Quantity)
		}
		if body.Items[2].SKU != "END-LIT-001" {
			t.Fatalf("expected hardener last, got %s", body.Items[2].SKU)
		}
	})

	t.Run("unknown machine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILegacyQuoteUseCase(ctrl)
		uc.EXPECT().
			BuildLineItems("pg9999", 100.0, 4).
			Return(nil, usecase.ErrInvalidCatalogMachine)
		h := NewLegacyQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/legacy", h.BuildLegacyQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/legacy", bytes.NewBufferString(`{"machine_id":"pg9999","area_m2":100,"quality_grade":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INVALID_MACHINE" {
			t.Fatalf("expected code INVALID_MACHINE, got %v", body["code"])
		}
	})

	t.Run("invalid quality grade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILegacyQuoteUseCase(ctrl)
		uc.EXPECT().
			BuildLineItems("pg280", 100.0, 11).
			Return(nil, usecase.ErrInvalidQualityGrade)
		h := NewLegacyQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/legacy", h.BuildLegacyQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/legacy", bytes.NewBufferString(`{"machine_id":"pg280","area_m2":100,"quality_grade":11}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INVALID_QUALITY_GRADE" {
			t.Fatalf("expected code INVALID_QUALITY_GRADE, got %v", body["code"])
		}
	})
}
