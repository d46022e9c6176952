// Package cddis talks to the CDDIS product archive: it fetches weekly
// directory listings, reads and writes flat replay files in the same
// one-entry-per-line format, and checks Earthdata credentials.
package cddis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/nocookie2/gnsscope/pkg/whttp"
)

const (
	// DefaultBaseURL is the HTTPS face of the archive. Weekly product
	// listings live under <base>/gnss/products/<week>/.
	DefaultBaseURL = "https://cddis.nasa.gov/archive"

	// DefaultConcurrency caps the per-week fan-out when fetching a
	// multi-week range.
	DefaultConcurrency = 4
)

// Client fetches weekly product listings from the archive's HTTPS index
// pages.
type Client struct {
	BaseURL string
	HTTP    *retryablehttp.Client
}

// NewClient returns a Client against baseURL (DefaultBaseURL when empty),
// optionally routed through proxy.
func NewClient(baseURL, proxy string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    whttp.NewClient(proxy),
	}
}

// FetchWeek retrieves the raw file listing for one GPS week. The archive
// renders each file as an anchor with the archiveItemText class;
// directory links end in a slash and are skipped. The lines come back
// unsanitized, exactly as listed — parsing and validation are the
// catalog's job.
func (c *Client) FetchWeek(ctx context.Context, week int) ([]string, error) {
	url := fmt.Sprintf("%s/gnss/products/%d/", c.BaseURL, week)

	res, err := whttp.Send(ctx, &whttp.Request{URL: url}, c.HTTP)
	if err != nil {
		return nil, fmt.Errorf("fetching listing for GPS week %d: %w", week, err)
	}
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("fetching listing for GPS week %d: HTTP %d", week, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing listing for GPS week %d: %w", week, err)
	}

	var files []string
	doc.Find("a.archiveItemText").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || strings.HasSuffix(href, "/") {
			return
		}
		files = append(files, href)
	})
	return files, nil
}

// FetchWeeks fetches listings for several GPS weeks and concatenates the
// batches in week order.
func (c *Client) FetchWeeks(ctx context.Context, weeks []int, concurrency int) ([]string, error) {
	batches, err := c.FetchWeekBatches(ctx, weeks, concurrency)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, batch := range batches {
		lines = append(lines, batch...)
	}
	return lines, nil
}

// FetchWeekBatches fetches listings for several GPS weeks with a
// fixed-size worker pool, one batch per week in input order. Each worker
// owns the batch for its week and nothing else; results are only read
// after every worker is done, so the output is deterministic regardless
// of completion order.
func (c *Client) FetchWeekBatches(ctx context.Context, weeks []int, concurrency int) ([][]string, error) {
	if len(weeks) == 0 {
		return nil, nil
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	batches := make([][]string, len(weeks))
	indexes := make(chan int, len(weeks))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				batch, err := c.FetchWeek(ctx, weeks[idx])
				if err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					continue
				}
				batches[idx] = batch
			}
		}()
	}
	for i := range weeks {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return nil, errs[0]
	}
	return batches, nil
}
