package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"slices"
	"sync"
	"time"

	"reelsmith/pkg/ingest"
)

type LatencyStats struct {
	DNS        time.Duration
	Connect    time.Duration
	FirstByte  time.Duration
	Total      time.Duration
	StatusCode int
	Error      error
}

type endpoint struct {
	method string
	path   string
	body   any
}

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "Base URL of the API")
	datasetSize := flag.Int("n", 20, "Number of requests per endpoint")
	concurrency := flag.Int("c", 1, "Concurrency level (1 = sequential)")
	flag.Parse()

	fmt.Printf("Benchmarking %s with N=%d, C=%d\n\n", *baseURL, *datasetSize, *concurrency)

	for _, ep := range endpoints() {
		benchmarkEndpoint(*baseURL, ep, *datasetSize, *concurrency)
	}
}

// endpoints covers every route, posting the bundled sample payloads.
func endpoints() []endpoint {
	s := ingest.Samples()
	return []endpoint{
		{method: http.MethodGet, path: "/"},
		{method: http.MethodGet, path: "/health"},
		{method: http.MethodGet, path: "/api/version"},
		{method: http.MethodGet, path: "/api/stats"},
		{method: http.MethodGet, path: "/api/sample"},
		{method: http.MethodPost, path: "/api/analyze", body: s.Analyze},
		{method: http.MethodPost, path: "/api/niche-analysis", body: s.NicheAnalysis},
		{method: http.MethodPost, path: "/api/generate-script", body: s.GenerateScript},
		{method: http.MethodPost, path: "/api/create-visual-plan", body: s.CreateVisualPlan},
		{method: http.MethodPost, path: "/api/full-pipeline", body: s.FullPipeline},
	}
}

func benchmarkEndpoint(baseURL string, ep endpoint, n, concurrency int) {
	var payload []byte
	if ep.body != nil {
		var err error
		if payload, err = json.Marshal(ep.body); err != nil {
			fmt.Printf("Endpoint: %s %s\n  Encode error: %v\n\n", ep.method, ep.path, err)
			return
		}
	}
	url := baseURL + ep.path

	results := make([]LatencyStats, n)
	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	startTotal := time.Now()

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = measureLatency(ep.method, url, payload)
		}(i)
	}

	wg.Wait()
	duration := time.Since(startTotal)

	// Analyze
	var totalDurations []time.Duration
	var fbDurations []time.Duration
	var errorsCount int

	for _, r := range results {
		if r.Error != nil || r.StatusCode >= http.StatusBadRequest {
			errorsCount++
			continue
		}
		totalDurations = append(totalDurations, r.Total)
		fbDurations = append(fbDurations, r.FirstByte)
	}

	fmt.Printf("Endpoint: %s %s\n", ep.method, ep.path)
	if errorsCount > 0 {
		fmt.Printf("  Errors: %d/%d\n", errorsCount, n)
	}
	if len(totalDurations) == 0 {
		fmt.Println("  No successful requests.")
		return
	}

	slices.Sort(totalDurations)
	slices.Sort(fbDurations)

	avgTotal := average(totalDurations)
	avgFB := average(fbDurations)

	fmt.Printf("  Requests: %d | Time: %v | RPS: %.2f\n", n, duration.Round(time.Millisecond), float64(n)/duration.Seconds())
	fmt.Printf("  Latency (Total)   : Min %v | Avg %v | Max %v\n", totalDurations[0], avgTotal, totalDurations[len(totalDurations)-1])
	fmt.Printf("  Latency (TTFB)    : Min %v | Avg %v | Max %v\n", fbDurations[0], avgFB, fbDurations[len(fbDurations)-1])
	fmt.Println()
}

func measureLatency(method, url string, payload []byte) LatencyStats {
	var stats LatencyStats
	var start, dnsStart, connStart, wroteRequest time.Time

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		stats.Error = err
		return stats
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	trace := &httptrace.ClientTrace{
		DNSStart: func(dsi httptrace.DNSStartInfo) { dnsStart = time.Now() },
		DNSDone: func(ddi httptrace.DNSDoneInfo) {
			stats.DNS = time.Since(dnsStart)
		},
		ConnectStart: func(network, addr string) { connStart = time.Now() },
		ConnectDone: func(network, addr string, err error) {
			stats.Connect = time.Since(connStart)
		},
		WroteRequest: func(wri httptrace.WroteRequestInfo) {
			wroteRequest = time.Now()
		},
		GotFirstResponseByte: func() {
			stats.FirstByte = time.Since(wroteRequest)
		},
	}
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	start = time.Now()
	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		stats.Error = err
		return stats
	}
	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		stats.Error = err
		return stats
	}
	stats.Total = time.Since(start)
	stats.StatusCode = resp.StatusCode

	return stats
}

func average(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}
