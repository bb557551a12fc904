package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Scenario is one calculator request the load test can issue
type Scenario struct {
	Name   string
	Path   string
	Params url.Values
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	sync.Mutex
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
}

var scenarios = []Scenario{
	{"add", "/time/add", url.Values{"duration": {"2 hours 30 minutes"}, "base": {"tomorrow at 9am"}}},
	{"subtract", "/time/subtract", url.Values{"duration": {"1 month"}, "base": {"2024-03-31"}}},
	{"difference", "/time/difference", url.Values{"start": {"2024-01-01"}, "end": {"now"}}},
	{"convert", "/duration/convert", url.Values{"duration": {"1 year 2 weeks"}, "unit": {"hours"}}},
	{"format", "/time/format", url.Values{"format": {"%Y-%m-%d %I:%M %p"}}},
	{"parse", "/time/parse", url.Values{"text": {"today at 3:45pm"}}},
	{"info", "/time/info", url.Values{}},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delay := flag.Duration("delay", 100*time.Millisecond, "Delay between requests per worker")
	flag.Parse()

	fmt.Printf("Load testing %s with %d scenarios\n", *baseURL, len(scenarios))
	fmt.Printf("Concurrency: %d goroutines, total requests: %d, delay: %v\n", *concurrency, *totalRequests, *delay)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ScenarioStats: make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delay, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Unlock()
			fmt.Printf("Progress: %d/%d requests completed\n", completed, stats.TotalRequests)
		}
	}()

	wg.Wait()
	close(results)
	<-done
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func (s *TestStats) record(result TestResult) {
	s.Lock()
	defer s.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}
	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
}

func worker(baseURL string, delay time.Duration, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delay > 0 {
			time.Sleep(delay)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		target := baseURL + scenario.Path + "?" + scenario.Params.Encode()

		start := time.Now()
		resp, err := client.Get(target)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(start)}
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		result.StatusCode = resp.StatusCode

		switch {
		case err != nil:
			result.Error = err
		case resp.StatusCode != http.StatusOK:
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		case strings.HasPrefix(string(body), "Error "):
			result.Error = fmt.Errorf("operation error on %s", scenario.Name)
		default:
			result.Success = true
		}
		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %s\n", humanize.Comma(int64(stats.TotalRequests)))
	fmt.Printf("Successful Requests: %s\n", humanize.Comma(int64(stats.SuccessfulRequests)))
	fmt.Printf("Failed Requests:     %s\n", humanize.Comma(int64(stats.FailedRequests)))
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", float64(len(sorted))/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for _, scenario := range scenarios {
		fmt.Printf("%-12s: %d requests\n", scenario.Name, stats.ScenarioStats[scenario.Name])
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
