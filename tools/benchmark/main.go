package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

const (
	defaultGatewayURL = "http://localhost:8080"
	defaultDuration   = 30 * time.Second
)

type Config struct {
	GatewayURL  string
	Address     string        // Viewer address for per-identity view requests
	Duration    time.Duration // How long to run the benchmark
	Concurrency int           // Number of concurrent workers
	Timeout     time.Duration // Per-request timeout
	OutputFile  string        // Output markdown file path (optional)
	Debug       bool
}

type EndpointStats struct {
	Path      string
	Count     int
	Errors    int
	Non2xx    int
	Durations []time.Duration
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	paths := []string{
		"/api/v1/listings",
	}
	if cfg.Address != "" {
		paths = append(paths,
			"/api/v1/listings?viewer="+cfg.Address,
			"/api/v1/views/owned?address="+cfg.Address,
			"/api/v1/views/listed?address="+cfg.Address,
			"/api/v1/views/rented?address="+cfg.Address,
		)
	}

	fmt.Printf("Benchmarking %s for %s with %d workers\n", cfg.GatewayURL, cfg.Duration, cfg.Concurrency)
	fmt.Printf("Endpoints: %d\n\n", len(paths))

	client := &http.Client{Timeout: cfg.Timeout}

	var mu sync.Mutex
	stats := make(map[string]*EndpointStats, len(paths))
	for _, p := range paths {
		stats[p] = &EndpointStats{Path: p}
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			// Spread workers across endpoints round-robin
			for n := workerID; ; n++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				path := paths[n%len(paths)]
				elapsed, status, err := doRequest(ctx, client, cfg.GatewayURL+path)

				mu.Lock()
				s := stats[path]
				s.Count++
				switch {
				case err != nil:
					s.Errors++
					if cfg.Debug {
						fmt.Printf("[DEBUG] Worker %d error on %s: %v\n", workerID, path, err)
					}
				case status < 200 || status > 299:
					s.Non2xx++
				default:
					s.Durations = append(s.Durations, elapsed)
				}
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()
	wallTime := time.Since(start)

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("BENCHMARK RESULTS")
	fmt.Println(strings.Repeat("=", 80))
	printStats(stats, paths, wallTime)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats, paths, wallTime); err != nil {
			fmt.Printf("\nWarning: failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\nReport written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.GatewayURL, "gateway-url", defaultGatewayURL, "Gateway base URL")
	flag.StringVar(&cfg.Address, "address", "", "Viewer address for per-identity view endpoints (optional)")
	flag.DurationVar(&cfg.Duration, "duration", defaultDuration, "Benchmark duration")
	flag.IntVar(&cfg.Concurrency, "concurrency", 5, "Number of concurrent workers")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	var timeoutSeconds int
	flag.IntVar(&timeoutSeconds, "request-timeout", 30, "Per-request timeout in seconds")

	flag.Parse()

	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.Concurrency > 50 {
		cfg.Concurrency = 50 // Cap to avoid hammering a shared fullnode through the gateway
	}

	return cfg
}

func doRequest(ctx context.Context, client *http.Client, url string) (time.Duration, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, err
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return time.Since(start), resp.StatusCode, nil
}

// percentile expects a sorted slice
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx]
}

func summarize(s *EndpointStats) (min, max, avg, p50, p95, p99 time.Duration) {
	if len(s.Durations) == 0 {
		return
	}

	sorted := make([]time.Duration, len(s.Durations))
	copy(sorted, s.Durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	min = sorted[0]
	max = sorted[len(sorted)-1]
	avg = total / time.Duration(len(sorted))
	p50 = percentile(sorted, 0.50)
	p95 = percentile(sorted, 0.95)
	p99 = percentile(sorted, 0.99)
	return
}

func printStats(stats map[string]*EndpointStats, paths []string, wallTime time.Duration) {
	var totalRequests, totalErrors int
	for _, p := range paths {
		totalRequests += stats[p].Count
		totalErrors += stats[p].Errors + stats[p].Non2xx
	}

	fmt.Printf("Wall time:      %s\n", formatDuration(wallTime))
	fmt.Printf("Total requests: %d\n", totalRequests)
	fmt.Printf("Failures:       %d\n", totalErrors)
	if wallTime > 0 {
		fmt.Printf("Throughput:     %.1f req/s\n", float64(totalRequests)/wallTime.Seconds())
	}
	fmt.Println()

	for _, path := range paths {
		s := stats[path]
		fmt.Printf("  %s\n", s.Path)
		fmt.Printf("    Requests:   %d\n", s.Count)
		if s.Errors > 0 {
			fmt.Printf("    Errors:     %d\n", s.Errors)
		}
		if s.Non2xx > 0 {
			fmt.Printf("    Non-2xx:    %d\n", s.Non2xx)
		}
		if len(s.Durations) > 0 {
			min, max, avg, p50, p95, p99 := summarize(s)
			fmt.Printf("    Latency:    min=%s avg=%s max=%s\n", formatDuration(min), formatDuration(avg), formatDuration(max))
			fmt.Printf("    Quantiles:  p50=%s p95=%s p99=%s\n", formatDuration(p50), formatDuration(p95), formatDuration(p99))
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("-", 80))
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// writeMarkdownReport writes a markdown report of the benchmark results
func writeMarkdownReport(filepath string, stats map[string]*EndpointStats, paths []string, wallTime time.Duration) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	_, _ = fmt.Fprintf(file, "# Gateway Benchmark Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	var totalRequests, totalErrors int
	for _, p := range paths {
		totalRequests += stats[p].Count
		totalErrors += stats[p].Errors + stats[p].Non2xx
	}

	_, _ = fmt.Fprintf(file, "## Summary\n\n")
	_, _ = fmt.Fprintf(file, "| Metric | Value |\n")
	_, _ = fmt.Fprintf(file, "|--------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Wall Time** | %s |\n", formatDuration(wallTime))
	_, _ = fmt.Fprintf(file, "| **Total Requests** | %d |\n", totalRequests)
	_, _ = fmt.Fprintf(file, "| **Failures** | %d |\n", totalErrors)
	if wallTime > 0 {
		_, _ = fmt.Fprintf(file, "| **Throughput** | %.1f req/s |\n", float64(totalRequests)/wallTime.Seconds())
	}
	_, _ = fmt.Fprintf(file, "\n## Endpoints\n\n")

	for _, path := range paths {
		s := stats[path]
		_, _ = fmt.Fprintf(file, "### `%s`\n\n", s.Path)
		_, _ = fmt.Fprintf(file, "| Metric | Value |\n")
		_, _ = fmt.Fprintf(file, "|--------|-------|\n")
		_, _ = fmt.Fprintf(file, "| **Requests** | %d |\n", s.Count)
		if s.Errors > 0 {
			_, _ = fmt.Fprintf(file, "| **Errors** | %d |\n", s.Errors)
		}
		if s.Non2xx > 0 {
			_, _ = fmt.Fprintf(file, "| **Non-2xx** | %d |\n", s.Non2xx)
		}
		if len(s.Durations) > 0 {
			min, max, avg, p50, p95, p99 := summarize(s)
			_, _ = fmt.Fprintf(file, "| **Min / Avg / Max** | %s / %s / %s |\n", formatDuration(min), formatDuration(avg), formatDuration(max))
			_, _ = fmt.Fprintf(file, "| **p50 / p95 / p99** | %s / %s / %s |\n", formatDuration(p50), formatDuration(p95), formatDuration(p99))
		}
		_, _ = fmt.Fprintf(file, "\n")
	}

	return nil
}
