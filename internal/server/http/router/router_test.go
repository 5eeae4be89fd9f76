package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sewtrack/internal/domain/model"
	"sewtrack/internal/server/http/handlers"
	testhelpers "sewtrack/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.WorkshopFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			OrdersFn: func(context.Context) ([]model.Order, error) {
				return []model.Order{{ID: "order-1", OrderNumber: "SO-100", WalletType: "bifold", Points: 4, Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}}, nil
			},
		},
		MetricsFacadeStub: testhelpers.MetricsFacadeStub{},
		WorkerFacadeStub:  testhelpers.WorkerFacadeStub{},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]any{"order_number": "SO-100", "wallet_type": "bifold", "points": 4, "orderer_name": "Dana"})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for create, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/metrics/summary?preset=today", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for summary, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/workers", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for workers, got %d", resp.Code)
	}
}

var _ handlers.WorkshopFacade = (*testhelpers.WorkshopFacadeStub)(nil)
