// Package schedule fetches the university timetable site and renders lesson
// lists for display.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"studjournal/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ErrUpstreamUnavailable means the timetable site could not be reached or
// answered with an error after all retries.
var ErrUpstreamUnavailable = errors.New("timetable source unavailable")

const (
	maxAttempts = 3
	retryPause  = 500 * time.Millisecond
)

// Faculty is one entry of the faculty directory
type Faculty struct {
	ID   int
	Name string
}

// Client reads the timetable site over HTTP
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a timetable client
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Faculties returns the faculty directory
func (c *Client) Faculties(ctx context.Context) ([]Faculty, error) {
	doc, err := c.fetch(ctx, "/faculties")
	if err != nil {
		return nil, err
	}

	var faculties []Faculty
	doc.Find("div.faculties a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		id, err := strconv.Atoi(strings.TrimPrefix(href, "/faculty/"))
		if err != nil {
			return
		}
		faculties = append(faculties, Faculty{ID: id, Name: strings.TrimSpace(s.Text())})
	})

	return faculties, nil
}

// Groups returns the group names of one faculty
func (c *Client) Groups(ctx context.Context, facultyID int) ([]string, error) {
	doc, err := c.fetch(ctx, fmt.Sprintf("/faculty/%d", facultyID))
	if err != nil {
		return nil, err
	}

	var groups []string
	doc.Find("div.groups a").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Text())
		if name != "" {
			groups = append(groups, name)
		}
	})

	return groups, nil
}

// Week returns the full week timetable of a group. Rows of the time table
// carry the slot time in the first cell and one cell per weekday after it,
// Monday first.
func (c *Client) Week(ctx context.Context, group string) (domain.Week, error) {
	var week domain.Week

	doc, err := c.fetch(ctx, "/group/"+group)
	if err != nil {
		return week, err
	}

	doc.Find("table.time-table tr").Each(func(_ int, row *goquery.Selection) {
		start, end := parseSlotTime(row.Find("td.time").Text())
		if start == "" {
			return
		}
		row.Find("td.day").Each(func(day int, cell *goquery.Selection) {
			if day >= len(week) {
				return
			}
			subject, _ := cell.Find("div.subject").Attr("title")
			if subject == "" {
				subject = strings.TrimSpace(cell.Find("div.subject").Text())
			}
			if subject == "" {
				return
			}
			room := strings.TrimSpace(cell.Find("div.room a").First().Text())
			week[day] = append(week[day], domain.Lesson{
				Subject: subject,
				Room:    room,
				Start:   start,
				End:     end,
			})
		})
	})

	return week, nil
}

// parseSlotTime splits "09:00–10:35" into start and end
func parseSlotTime(s string) (start, end string) {
	s = strings.TrimSpace(s)
	for _, dash := range []string{"–", "—", "-"} {
		if parts := strings.SplitN(s, dash, 2); len(parts) == 2 {
			return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		}
	}
	return s, ""
}

// fetch retrieves a page with a bounded retry: maxAttempts tries with a
// fixed pause, then ErrUpstreamUnavailable.
func (c *Client) fetch(ctx context.Context, path string) (*goquery.Document, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryPause):
			}
		}

		doc, err := c.fetchOnce(ctx, path)
		if err == nil {
			return doc, nil
		}
		lastErr = err
		c.logger.Warn("Failed to fetch timetable page",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, path string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
