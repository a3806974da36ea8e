package riskfolio

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/riskfolio/date"
	"github.com/rs/zerolog/log"
)

// contains http utils to deal with the dashboard backend.

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
	dir  string // os.TempDir() if empty
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", date.Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("riskfolio-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		log.Debug().Str("url", req.URL.String()).Msg("http cache hit")
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("status", resp.Status).Msg("http request")
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	if err := c.put(key, resp); err != nil {
		log.Warn().Err(err).Msg("cache write err (ignored)")
	}
	return resp, nil
}

func (c *diskCache) path(key string) string {
	dir := c.dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, key)
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	// DumpResponse reads the body and replaces it with an in-memory copy.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(key), content, 0o644)
}

// daily returns a client with a cache all with daily expire
func daily(dir string) *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport, dir: dir}
	return client
}

// HTTPProvider fetches the return series from the dashboard backend.
//
// The response is a JSON document, Path is the JSONPath expression selecting the array of
// samples in it ("$" for a top level array). Samples use the dashboard field names
// (date, portfolioValue, returns, cumulativeReturns) or the JSONL ones.
type HTTPProvider struct {
	// URL of the historical endpoint, "{days}" is replaced by the requested number of days,
	// like "http://localhost:8000/api/portfolio/historical/{days}".
	URL    string
	Path   string       // "$" if empty.
	Client *http.Client // a daily cached client if nil.
}

// NewHTTPProvider returns a provider for url whose responses are cached on disk for the day.
func NewHTTPProvider(url, path string) *HTTPProvider {
	return &HTTPProvider{URL: url, Path: path, Client: daily("")}
}

func (p *HTTPProvider) Series(ctx context.Context, days int) (Series, error) {
	client := p.Client
	if client == nil {
		client = daily("")
	}
	addr := strings.ReplaceAll(p.URL, "{days}", strconv.Itoa(days))

	var doc any
	if err := jwget(ctx, client, addr, &doc); err != nil {
		return nil, err
	}
	s, err := extractSeries(doc, p.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid response from %s: %w", addr, err)
	}
	return s.Tail(days), nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// extractSeries selects the samples at path in a decoded JSON document.
func extractSeries(doc any, path string) (Series, error) {
	if path == "" {
		path = "$"
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	items, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("jsonpath %q: want an array of samples got %T", path, selected)
	}

	// jsample accepts both the dashboard and the JSONL field names.
	type jsample struct {
		Date              date.Date `json:"date"`
		PortfolioValue    float64   `json:"portfolioValue"`
		Returns           *float64  `json:"returns"`
		Return            *float64  `json:"return"`
		CumulativeReturns *float64  `json:"cumulativeReturns"`
		CumulativeReturn  *float64  `json:"cumulativeReturn"`
	}

	s := make(Series, 0, len(items))
	var cumulative float64
	for i, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		var js jsample
		if err := json.Unmarshal(b, &js); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		r := js.Return
		if js.Returns != nil {
			r = js.Returns
		}
		if r == nil {
			return nil, fmt.Errorf("sample %d: missing return", i)
		}
		cumulative += *r
		sample := ReturnSample{Date: js.Date, PortfolioValue: js.PortfolioValue, Return: *r, CumulativeReturn: cumulative}
		if js.CumulativeReturns != nil {
			sample.CumulativeReturn = *js.CumulativeReturns
		} else if js.CumulativeReturn != nil {
			sample.CumulativeReturn = *js.CumulativeReturn
		}
		s = append(s, sample)
	}
	return s, nil
}
