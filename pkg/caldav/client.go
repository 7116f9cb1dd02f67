package caldav

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// timeRangeFormat is the UTC timestamp format used in calendar-query
// time-range filters (RFC 4791 §9.9).
const timeRangeFormat = "20060102T150405Z"

// Client speaks the subset of CalDAV this service needs: calendar
// discovery, time-range event queries, and per-object GET/PUT/DELETE.
type Client struct {
	baseURL    *url.URL
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a new CalDAV client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("caldav: server URL is required")
	}
	base, err := url.Parse(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("caldav: invalid server URL: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:  base,
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// ListCalendars discovers calendar collections under the configured home
// via PROPFIND Depth:1.
func (c *Client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	body := `<?xml version="1.0" encoding="utf-8"?>
<d:propfind xmlns:d="DAV:" xmlns:c="urn:ietf:params:xml:ns:caldav">
  <d:prop>
    <d:displayname/>
    <d:resourcetype/>
  </d:prop>
</d:propfind>`

	ms, err := c.doMultistatus(ctx, "PROPFIND", c.baseURL.Path, body, "1")
	if err != nil {
		return nil, err
	}

	var calendars []Calendar
	for _, resp := range ms.Responses {
		name, isCalendar := calendarProps(resp)
		if !isCalendar {
			continue
		}
		path := resp.Href
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		if name == "" {
			name = lastPathSegment(path)
		}
		calendars = append(calendars, Calendar{Name: name, Path: path})
	}
	return calendars, nil
}

// QueryEvents runs a calendar-query REPORT with a VEVENT time-range
// filter against one calendar collection.
func (c *Client) QueryEvents(ctx context.Context, calendarPath string, start, end time.Time) ([]Object, error) {
	body := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<c:calendar-query xmlns:d="DAV:" xmlns:c="urn:ietf:params:xml:ns:caldav">
  <d:prop>
    <d:getetag/>
    <c:calendar-data/>
  </d:prop>
  <c:filter>
    <c:comp-filter name="VCALENDAR">
      <c:comp-filter name="VEVENT">
        <c:time-range start="%s" end="%s"/>
      </c:comp-filter>
    </c:comp-filter>
  </c:filter>
</c:calendar-query>`,
		start.UTC().Format(timeRangeFormat),
		end.UTC().Format(timeRangeFormat),
	)

	ms, err := c.doMultistatus(ctx, "REPORT", calendarPath, body, "1")
	if err != nil {
		return nil, err
	}

	var objects []Object
	for _, resp := range ms.Responses {
		for _, ps := range resp.Propstats {
			if !strings.Contains(ps.Status, "200") || ps.Prop.CalendarData == "" {
				continue
			}
			objects = append(objects, Object{
				Path: resp.Href,
				ETag: ps.Prop.ETag,
				Data: ps.Prop.CalendarData,
			})
		}
	}
	return objects, nil
}

// GetObject fetches a single calendar object by path.
func (c *Client) GetObject(ctx context.Context, path string) (Object, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return Object{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Object{}, statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Object{}, fmt.Errorf("caldav: failed to read object body: %w", err)
	}
	return Object{
		Path: path,
		ETag: resp.Header.Get("ETag"),
		Data: string(data),
	}, nil
}

// PutObject writes a calendar object. Used for both create and update;
// the server allocates no identifiers beyond the path the caller chose.
func (c *Client) PutObject(ctx context.Context, path, ics string) error {
	resp, err := c.do(ctx, http.MethodPut, path, ics, map[string]string{
		"Content-Type": "text/calendar; charset=utf-8",
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

// DeleteObject removes a calendar object by path.
func (c *Client) DeleteObject(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

// --- internals ---

func (c *Client) do(ctx context.Context, method, path, body string, headers map[string]string) (*http.Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := *c.baseURL
	u.Path = path
	u.RawQuery = ""

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("caldav: failed to build %s request: %w", method, err)
	}
	req.SetBasicAuth(c.username, c.password)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("caldav: %s %s failed: %w", method, path, err)
	}
	return resp, nil
}

func (c *Client) doMultistatus(ctx context.Context, method, path, body, depth string) (*multistatus, error) {
	resp, err := c.do(ctx, method, path, body, map[string]string{
		"Content-Type": "application/xml; charset=utf-8",
		"Depth":        depth,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMultiStatus {
		return nil, statusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("caldav: failed to read multistatus body: %w", err)
	}

	var ms multistatus
	if err := xml.Unmarshal(raw, &ms); err != nil {
		return nil, fmt.Errorf("caldav: failed to parse multistatus response: %w", err)
	}
	return &ms, nil
}

func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
}

// calendarProps extracts the displayname and whether the response
// describes a calendar collection.
func calendarProps(resp davResponse) (string, bool) {
	var name string
	var isCalendar bool
	for _, ps := range resp.Propstats {
		if !strings.Contains(ps.Status, "200") {
			continue
		}
		if ps.Prop.ResourceType != nil && ps.Prop.ResourceType.Calendar != nil {
			isCalendar = true
		}
		if ps.Prop.DisplayName != nil {
			name = *ps.Prop.DisplayName
		}
	}
	return name, isCalendar
}

func lastPathSegment(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
