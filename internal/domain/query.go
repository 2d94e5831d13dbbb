package domain

import (
	"maps"
	"strings"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

func ParseSortDirection(raw string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(raw))) {
	case SortAscending:
		return SortAscending, nil
	case SortDescending:
		return SortDescending, nil
	default:
		return "", &ValidationError{Field: "sortDirection", Message: "Sort direction must be asc or desc"}
	}
}

func (d SortDirection) Toggle() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// Filter maps a filter field to its value. Empty values mean "no filter".
type Filter map[string]string

func (f Filter) Normalize() Filter {
	out := Filter{}
	for key, value := range f {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

type QueryParams struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection SortDirection
	Filter        Filter
}

func (p QueryParams) Clone() QueryParams {
	p.Filter = maps.Clone(p.Filter)
	return p
}

func (p QueryParams) Equal(other QueryParams) bool {
	return p.Page == other.Page &&
		p.Size == other.Size &&
		p.SortBy == other.SortBy &&
		p.SortDirection == other.SortDirection &&
		maps.Equal(p.Filter.Normalize(), other.Filter.Normalize())
}

// ClampPage bounds Page to [0, max(totalPages-1, 0)].
func (p QueryParams) ClampPage(totalPages int) QueryParams {
	last := max(totalPages-1, 0)
	p.Page = min(max(p.Page, 0), last)
	return p
}

func (p QueryParams) Validate() error {
	if p.Page < 0 {
		return &ValidationError{Field: "page", Message: "Page must not be negative"}
	}
	if p.Size <= 0 {
		return &ValidationError{Field: "size", Message: "Page size must be at least 1"}
	}
	if strings.TrimSpace(p.SortBy) == "" {
		return &ValidationError{Field: "sortBy", Message: "Sort field is required"}
	}
	if _, err := ParseSortDirection(string(p.SortDirection)); err != nil {
		return err
	}
	return nil
}

type Page[T any] struct {
	Content    []T
	TotalPages int
}
