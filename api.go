package main

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-redis/redis/v8"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Structures for the Hypixel Bazaar API.
type QuickStatus struct {
	BuyPrice       float64 `json:"buyPrice"`
	SellPrice      float64 `json:"sellPrice"`
	BuyMovingWeek  float64 `json:"buyMovingWeek"`
	SellMovingWeek float64 `json:"sellMovingWeek"`
}

type BazaarProduct struct {
	ProductID   string      `json:"product_id"`
	QuickStatus QuickStatus `json:"quick_status"`
}

type BazaarResponse struct {
	Success     bool                     `json:"success"`
	LastUpdated int64                    `json:"lastUpdated"`
	Products    map[string]BazaarProduct `json:"products"`
}

const (
	snapshotKey = "bazaar:snapshot"
	backoffBase = 500 * time.Millisecond
)

// BazaarClient fetches bazaar snapshots with retries and keeps the last
// good snapshot in an in-process TTL cache. With a redis address configured
// it also shares the raw snapshot between invocations, so rapid consecutive
// runs do not hammer the API.
type BazaarClient struct {
	url        string
	maxRetries int
	http       *http.Client
	limiter    *rate.Limiter
	snapshots  *gocache.Cache
	rdb        *redis.Client
	redisTTL   time.Duration
}

func NewBazaarClient(cfg Config) *BazaarClient {
	retries := cfg.MaxRetries
	if retries < 1 {
		retries = 1
	}
	limit := rate.Limit(cfg.RateLimit)
	if limit <= 0 {
		limit = rate.Inf
	}
	c := &BazaarClient{
		url:        cfg.BazaarURL,
		maxRetries: retries,
		http:       &http.Client{Timeout: cfg.HTTPTimeout()},
		limiter:    rate.NewLimiter(limit, 1),
		snapshots:  gocache.New(cfg.CacheTTL(), 2*cfg.CacheTTL()),
	}
	if cfg.Redis.Addr != "" {
		c.rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		c.redisTTL = cfg.Redis.TTL()
	}
	return c
}

// FetchPrices returns the instant-buy price per product id for the declared
// items. Ids absent from the snapshot are simply left out of the result;
// deciding whether that is fatal belongs to item construction.
func (c *BazaarClient) FetchPrices(ctx context.Context, defs map[string]ItemDef) (map[string]float64, error) {
	resp, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(defs))
	for _, def := range defs {
		if product, ok := resp.Products[def.ID]; ok {
			prices[def.ID] = product.QuickStatus.BuyPrice
		}
	}
	return prices, nil
}

// Snapshot returns a decoded bazaar snapshot, consulting the in-process
// cache, then redis, then the live API.
func (c *BazaarClient) Snapshot(ctx context.Context) (*BazaarResponse, error) {
	if cached, ok := c.snapshots.Get(snapshotKey); ok {
		return cached.(*BazaarResponse), nil
	}
	if body, ok := c.redisLookup(ctx); ok {
		if resp, err := decodeSnapshot(body); err == nil {
			c.snapshots.Set(snapshotKey, resp, gocache.DefaultExpiration)
			return resp, nil
		}
		// Stale or corrupt cache entry; fall through to a live fetch.
	}

	log.Printf("Fetching live bazaar data from %s", c.url)
	body, err := c.fetchWithRetry(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := decodeSnapshot(body)
	if err != nil {
		return nil, err
	}
	c.snapshots.Set(snapshotKey, resp, gocache.DefaultExpiration)
	c.redisStore(ctx, body)
	return resp, nil
}

func decodeSnapshot(body []byte) (*BazaarResponse, error) {
	var resp BazaarResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing bazaar response: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("bazaar API reported success=false (lastUpdated %d)", resp.LastUpdated)
	}
	return &resp, nil
}

func (c *BazaarClient) redisLookup(ctx context.Context) ([]byte, bool) {
	if c.rdb == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis lookup failed: %v", err)
		}
		return nil, false
	}
	return body, true
}

func (c *BazaarClient) redisStore(ctx context.Context, body []byte) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, snapshotKey, body, c.redisTTL).Err(); err != nil {
		log.Printf("redis store failed: %v", err)
	}
}

func (c *BazaarClient) fetchWithRetry(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := backoffBase * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		data, err := c.fetchOnce(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		return data, nil
	}
	return nil, fmt.Errorf("all %d attempts failed: %w", c.maxRetries, lastErr)
}

func (c *BazaarClient) fetchOnce(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating bazaar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", c.url, err)
	}
	return handleResponse(resp)
}

func handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var reader io.ReadCloser
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	case "br":
		reader = newBrotliReadCloser(resp.Body)
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(bufio.NewReaderSize(reader, 64*1024))
}

type brotliReadCloser struct {
	br *brotli.Reader
	rc io.ReadCloser
}

func (b *brotliReadCloser) Read(p []byte) (n int, err error) {
	return b.br.Read(p)
}

func (b *brotliReadCloser) Close() error {
	return b.rc.Close()
}

func newBrotliReadCloser(r io.ReadCloser) io.ReadCloser {
	return &brotliReadCloser{
		br: brotli.NewReader(r),
		rc: r,
	}
}
