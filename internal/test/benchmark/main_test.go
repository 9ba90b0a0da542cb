package benchmark

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"device-inventory-service/internal/app/routes"
	"device-inventory-service/internal/domain/services/container"
	"device-inventory-service/internal/test/fixtures"
)

// TestConfig tunes the load runs. An empty BaseURL runs against an in-process server.
type TestConfig struct {
	BaseURL     string `json:"base_url"`
	Concurrency int    `json:"concurrency"`
	Requests    int    `json:"requests"`
}

var config TestConfig

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if err := loadConfig(); err != nil {
		fmt.Printf("failed to load benchmark config: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// loadConfig reads the optional test_config.json next to this file
func loadConfig() error {
	config = TestConfig{
		Concurrency: 10,
		Requests:    100,
	}

	data, err := os.ReadFile("test_config.json")
	if err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parse test_config.json: %w", err)
		}
	}
	return nil
}

// baseURL returns the configured target or starts a seeded in-process server
func baseURL(t testing.TB) string {
	t.Helper()
	if config.BaseURL != "" {
		return config.BaseURL
	}

	cfg := fixtures.Config()
	cfg.RateLimitRPS = 0
	db := fixtures.NewSeededDB(t, cfg)
	r := routes.SetupRouter(container.NewServiceContainer(db, cfg, nil), cfg, zap.NewNop())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func runAndCheck(t *testing.T, run func(*APIBenchmark) *BenchmarkResult) *BenchmarkResult {
	t.Helper()
	if testing.Short() {
		t.Skip("load run skipped in short mode")
	}

	result := run(NewAPIBenchmark(baseURL(t), config.Concurrency, config.Requests))
	result.Log(zaptest.NewLogger(t))
	assert.Zero(t, result.FailureCount, "success rate %.2f%%", result.SuccessRate())
	return result
}

func TestDeviceList(t *testing.T) {
	runAndCheck(t, func(b *APIBenchmark) *BenchmarkResult { return b.RunGET("/devices") })
}

func TestDeviceDetail(t *testing.T) {
	runAndCheck(t, func(b *APIBenchmark) *BenchmarkResult {
		return b.RunGET(fmt.Sprintf("/devices/%d", fixtures.AssignedLaptopID))
	})
}

func TestEmployeeList(t *testing.T) {
	runAndCheck(t, func(b *APIBenchmark) *BenchmarkResult { return b.RunGET("/employees") })
}

func TestEmployeeDetail(t *testing.T) {
	runAndCheck(t, func(b *APIBenchmark) *BenchmarkResult {
		return b.RunGET(fmt.Sprintf("/employees/%d", fixtures.JaneID))
	})
}

func TestDeviceCreate(t *testing.T) {
	result := runAndCheck(t, func(b *APIBenchmark) *BenchmarkResult {
		return b.RunPOST("/devices", map[string]interface{}{
			"name":                 "Load Test Laptop",
			"deviceTypeName":       "Laptop",
			"isEnabled":            true,
			"additionalProperties": `{"batch":"load"}`,
		})
	})
	assert.Equal(t, config.Requests, result.StatusCodes[http.StatusCreated])
}

func BenchmarkGetDevice(b *testing.B) {
	gin.SetMode(gin.TestMode)
	cfg := fixtures.Config()
	cfg.RateLimitRPS = 0
	db := fixtures.NewSeededDB(b, cfg)
	r := routes.SetupRouter(container.NewServiceContainer(db, cfg, nil), cfg, zap.NewNop())
	path := fmt.Sprintf("/api/devices/%d", fixtures.AssignedLaptopID)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}
