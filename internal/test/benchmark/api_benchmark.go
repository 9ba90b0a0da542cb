package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// APIBenchmark fires a fixed number of requests at an endpoint with bounded concurrency
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	Client      *http.Client
}

// BenchmarkResult summarizes one run
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

// RequestResult is the outcome of a single request
type RequestResult struct {
	Duration   time.Duration
	StatusCode int
	Error      error
}

// NewAPIBenchmark creates a benchmark against baseURL
func NewAPIBenchmark(baseURL string, concurrency, requests int) *APIBenchmark {
	if concurrency < 1 {
		concurrency = 1
	}
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RunGET benchmarks a GET endpoint
func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.runTest(http.MethodGet, b.BaseURL+path, nil)
}

// RunPOST benchmarks a POST endpoint with a JSON payload
func (b *APIBenchmark) RunPOST(path string, payload interface{}) *BenchmarkResult {
	return b.runWithPayload(http.MethodPost, path, payload)
}

// RunPUT benchmarks a PUT endpoint with a JSON payload
func (b *APIBenchmark) RunPUT(path string, payload interface{}) *BenchmarkResult {
	return b.runWithPayload(http.MethodPut, path, payload)
}

// RunDELETE benchmarks a DELETE endpoint
func (b *APIBenchmark) RunDELETE(path string) *BenchmarkResult {
	return b.runTest(http.MethodDelete, b.BaseURL+path, nil)
}

func (b *APIBenchmark) runWithPayload(method, path string, payload interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return &BenchmarkResult{
			URL:    url,
			Method: method,
			Errors: []string{fmt.Sprintf("encode payload: %v", err)},
		}
	}
	return b.runTest(method, url, jsonData)
}

func (b *APIBenchmark) runTest(method, url string, payload []byte) *BenchmarkResult {
	results := make(chan RequestResult, b.Requests)
	var wg sync.WaitGroup
	limiter := make(chan struct{}, b.Concurrency)

	startTime := time.Now()

	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			results <- b.do(method, url, payload)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var minTime time.Duration = 1<<63 - 1
	var maxTime time.Duration
	var totalTime time.Duration
	successCount := 0
	failureCount := 0
	statusCodes := make(map[int]int)
	var errors []string

	for result := range results {
		if result.Error != nil {
			failureCount++
			errors = append(errors, result.Error.Error())
			continue
		}

		totalTime += result.Duration
		if result.Duration < minTime {
			minTime = result.Duration
		}
		if result.Duration > maxTime {
			maxTime = result.Duration
		}

		statusCodes[result.StatusCode]++
		if result.StatusCode >= 200 && result.StatusCode < 300 {
			successCount++
		} else {
			failureCount++
		}
	}

	totalElapsed := time.Since(startTime)
	averageTime := time.Duration(0)
	if successCount+failureCount > 0 {
		averageTime = totalTime / time.Duration(successCount+failureCount)
	}
	if minTime > maxTime {
		minTime = 0
	}

	return &BenchmarkResult{
		URL:            url,
		Method:         method,
		Concurrency:    b.Concurrency,
		TotalRequests:  b.Requests,
		SuccessCount:   successCount,
		FailureCount:   failureCount,
		TotalTime:      totalElapsed,
		AverageTime:    averageTime,
		MinTime:        minTime,
		MaxTime:        maxTime,
		RequestsPerSec: float64(b.Requests) / totalElapsed.Seconds(),
		StatusCodes:    statusCodes,
		Errors:         errors,
	}
}

func (b *APIBenchmark) do(method, url string, payload []byte) RequestResult {
	start := time.Now()
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return RequestResult{Error: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return RequestResult{Error: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return RequestResult{
		Duration:   time.Since(start),
		StatusCode: resp.StatusCode,
	}
}

// SuccessRate is the share of 2xx responses in percent
func (r *BenchmarkResult) SuccessRate() float64 {
	if r.TotalRequests == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(r.TotalRequests) * 100
}

// Log writes the result through logger, with at most five sample errors
func (r *BenchmarkResult) Log(logger *zap.Logger) {
	codes := make([]int, 0, len(r.StatusCodes))
	for code := range r.StatusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	distribution := make([]string, 0, len(codes))
	for _, code := range codes {
		distribution = append(distribution, fmt.Sprintf("%d:%d", code, r.StatusCodes[code]))
	}

	sample := r.Errors
	if len(sample) > 5 {
		sample = sample[:5]
	}

	logger.Info("benchmark result",
		zap.String("method", r.Method),
		zap.String("url", r.URL),
		zap.Int("concurrency", r.Concurrency),
		zap.Int("total", r.TotalRequests),
		zap.Int("success", r.SuccessCount),
		zap.Int("failure", r.FailureCount),
		zap.Duration("elapsed", r.TotalTime),
		zap.Duration("avg", r.AverageTime),
		zap.Duration("min", r.MinTime),
		zap.Duration("max", r.MaxTime),
		zap.Float64("rps", r.RequestsPerSec),
		zap.Strings("status_codes", distribution),
		zap.Strings("errors", sample),
	)
}
