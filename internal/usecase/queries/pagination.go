package queries

import (
	"math"

	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is 1-indexed. Zero values fall back to the defaults.
type PageRequest struct {
	Page  int
	Limit int
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// Paging holds the configured limits applied to every list query.
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

func NewPaging(cfg config.BookingConfig) Paging {
	p := Paging{DefaultLimit: cfg.DefaultPageSize, MaxLimit: cfg.MaxPageSize}
	if p.DefaultLimit <= 0 {
		p.DefaultLimit = DefaultLimit
	}
	if p.MaxLimit <= 0 {
		p.MaxLimit = MaxLimit
	}
	return p
}

var ErrPageOutOfRange = errs.Mark(errs.New("page is out of range"), errs.ErrValidation)

// Normalize applies the defaults and caps. The resulting offset must fit the
// int32 the queries take.
func (p Paging) Normalize(r PageRequest) (PageRequest, error) {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.Limit <= 0 {
		r.Limit = p.DefaultLimit
	}
	if r.Limit > p.MaxLimit {
		r.Limit = p.MaxLimit
	}
	if int64(r.Page-1)*int64(r.Limit) > math.MaxInt32 {
		return PageRequest{}, ErrPageOutOfRange
	}
	return r, nil
}

func (r PageRequest) Offset() int32 {
	return int32((r.Page - 1) * r.Limit)
}

func NewPage[T any](items []T, total int64, r PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if r.Limit > 0 {
		pages = int((total + int64(r.Limit) - 1) / int64(r.Limit))
	}
	return Page[T]{Items: items, Total: total, Page: r.Page, Limit: r.Limit, TotalPages: pages}
}
