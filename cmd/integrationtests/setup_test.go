package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"asset-marketplace/internal/config"
	"asset-marketplace/internal/events"
	"asset-marketplace/internal/ledger"
	market "asset-marketplace/internal/marketService"
	"asset-marketplace/internal/registry"
	"asset-marketplace/internal/repository"
	"asset-marketplace/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TestEnv bundles the router with the in-memory collaborators so tests can
// seed balances and inspect custody directly.
type TestEnv struct {
	Router   *gin.Engine
	Ledger   *ledger.MemoryLedger
	Registry *registry.MemoryRegistry
}

// SetupTestEnv initializes the full stack against in-memory collaborators.
// The auction duration is a nanosecond so finish paths are exercisable
// without sleeping.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	cfg := config.Settings{
		Port:            ":0",
		AdminAccount:    "admin",
		MarketAccount:   "marketplace",
		MintPrice:       decimal.NewFromInt(10),
		AuctionDuration: time.Nanosecond,
		MinimumBidCount: 2,
	}

	repo := repository.NewMemoryRepo()
	reg := registry.NewMemoryRegistry()
	led := ledger.NewMemoryLedger(cfg.MarketAccount)
	svc := market.NewMarketplaceService(repo, reg, led, events.NewRecorder(), cfg)

	return &TestEnv{
		Router:   server.SetupRouter(svc),
		Ledger:   led,
		Registry: reg,
	}
}

// Fund credits and authorizes an account on the in-memory ledger
func (env *TestEnv) Fund(account string, amount int64) {
	env.Ledger.Credit(account, decimal.NewFromInt(amount))
	env.Ledger.Authorize(account, decimal.NewFromInt(amount))
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if data, ok := resp["data"].(map[string]any); ok && w.Code < 400 {
			resp = data
		}
	}

	return resp, w
}
