package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// localDateTimeLayout is how the backend serializes zone-less timestamps.
const localDateTimeLayout = "2006-01-02T15:04:05"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	localDateTimeLayout,
	"2006-01-02T15:04",
}

// flexibleID decodes ids that the services emit either as numbers or as
// strings.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = flexibleID(n.String())
	return nil
}

type timestamp time.Time

func (t *timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
			*t = timestamp{}
			return nil
		}
		return fmt.Errorf("decode timestamp: %w", err)
	}
	parsed, err := parseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = timestamp(parsed)
	return nil
}

func (t timestamp) Time() time.Time {
	return time.Time(t)
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// pageEnvelope decodes a Spring page or a bare JSON array, which the
// unpaginated endpoints return.
type pageEnvelope[T any] struct {
	Content    []T
	TotalPages int
}

func (p *pageEnvelope[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		p.Content = items
		p.TotalPages = 1
		if len(items) == 0 {
			p.TotalPages = 0
		}
		return nil
	}

	var page struct {
		Content    []T `json:"content"`
		TotalPages int `json:"totalPages"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	p.Content = page.Content
	p.TotalPages = page.TotalPages
	return nil
}
