package checker

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nikbrunner/nt/internal/model"
)

// Status is the health of one link URL.
type Status int

const (
	Healthy     Status = iota // 2xx or 3xx response
	Dead                      // 404 or 410 Gone
	Unreachable               // timeout, DNS failure, connection refused, etc.
)

// Result is the outcome for one link on the dial.
type Result struct {
	Link       model.Entry
	Folder     string // title of the containing folder, "" at top level
	Status     Status
	StatusCode int    // HTTP status code, 0 if the connection failed
	Detail     string // short reason for unreachable links
}

// ProgressFunc is called after each URL check. done is the number of
// URLs checked so far, total the number of links on the dial.
type ProgressFunc func(done, total int)

// Config controls a dial check.
type Config struct {
	Concurrency    int
	Timeout        time.Duration
	ExcludeDomains []string // domains whose 404s report as possibly private
}

// DefaultConfig returns the default check configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: 8,
		Timeout:     10 * time.Second,
	}
}

// CheckDial probes every link on the dial, folder children included,
// and reports one Result per link in dial order.
func CheckDial(entries []model.Entry, cfg Config, onProgress ProgressFunc) []Result {
	results := flatten(entries)
	if len(results) == 0 {
		return nil
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	// The http client logs protocol noise (unsolicited responses and
	// the like) straight to the default logger. Silence it for the
	// duration of the check.
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	exclude := make(map[string]bool, len(cfg.ExcludeDomains))
	for _, domain := range cfg.ExcludeDomains {
		exclude[strings.ToLower(domain)] = true
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	jobs := make(chan int, len(results))
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	done := 0

	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				probe(client, &results[idx], exclude)

				if onProgress != nil {
					progressMu.Lock()
					done++
					onProgress(done, len(results))
					progressMu.Unlock()
				}
			}
		}()
	}

	for i := range results {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// Summarize tallies results by status.
func Summarize(results []Result) (healthy, dead, unreachable int) {
	for _, r := range results {
		switch r.Status {
		case Healthy:
			healthy++
		case Dead:
			dead++
		default:
			unreachable++
		}
	}
	return healthy, dead, unreachable
}

// flatten collects one pending Result per link in dial order, folder
// children behind their folder.
func flatten(entries []model.Entry) []Result {
	var results []Result
	for _, e := range entries {
		if e.Kind == model.KindFolder {
			for _, c := range e.Children {
				results = append(results, Result{Link: c, Folder: e.Title})
			}
			continue
		}
		results = append(results, Result{Link: e})
	}
	return results
}

// probe checks one URL and fills in the result's status fields.
func probe(client *http.Client, r *Result, exclude map[string]bool) {
	// HEAD first; some servers reject it, so fall back to GET.
	resp, err := client.Head(r.Link.URL)
	if err != nil {
		resp, err = client.Get(r.Link.URL)
		if err != nil {
			r.Status = Unreachable
			r.Detail = normalizeError(err.Error())
			return
		}
	}
	defer resp.Body.Close()

	r.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		r.Status = Healthy
	case resp.StatusCode == 404 || resp.StatusCode == 410:
		// Private hosts answer 404 for pages that need auth.
		if excludedDomain(r.Link.URL, exclude) {
			r.Status = Unreachable
			r.Detail = "Possibly private (auth required)"
		} else {
			r.Status = Dead
		}
	default:
		// 500s and 403s may be temporary or auth-gated.
		r.Status = Unreachable
		r.Detail = http.StatusText(resp.StatusCode)
	}
}

// excludedDomain reports whether the URL's host matches an excluded
// domain, subdomains included.
func excludedDomain(rawURL string, exclude map[string]bool) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Host)
	if exclude[host] {
		return true
	}
	for domain := range exclude {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// normalizeError folds verbose transport errors into short categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"):
		return "TLS/certificate error"
	case strings.Contains(lower, "network is unreachable"):
		return "Network unreachable"
	case strings.Contains(lower, "tls:"):
		return "TLS error"
	default:
		return errStr
	}
}
