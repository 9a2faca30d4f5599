package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"

	"cricket-analytics/internal/config"
)

// CricsheetClient checks the published Cricsheet archive for updates without
// downloading it. Ingestion itself is upstream; this only answers "is there
// newer data than our last run".
type CricsheetClient struct {
	feedURL string
	client  *fasthttp.Client
}

type FeedInfo struct {
	URL           string    `json:"url"`
	LastModified  time.Time `json:"last_modified"`
	ContentLength int64     `json:"content_length"`
	CheckedAt     time.Time `json:"checked_at"`
}

func NewCricsheetClient(cfg *config.Config) *CricsheetClient {
	return &CricsheetClient{
		feedURL: cfg.CricsheetFeedURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *CricsheetClient) CheckFeed(ctx context.Context) (*FeedInfo, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.feedURL)
	req.Header.SetMethod(fasthttp.MethodHead)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(30 * time.Second)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("failed to check cricsheet feed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("cricsheet feed returned status %d", resp.StatusCode())
	}

	info := &FeedInfo{
		URL:       c.feedURL,
		CheckedAt: time.Now(),
	}
	if lm := string(resp.Header.Peek(fasthttp.HeaderLastModified)); lm != "" {
		if t, err := time.Parse(http.TimeFormat, lm); err == nil {
			info.LastModified = t
		}
	}
	if cl := string(resp.Header.Peek(fasthttp.HeaderContentLength)); cl != "" {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil {
			info.ContentLength = n
		}
	}
	return info, nil
}
