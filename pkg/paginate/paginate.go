// Package paginate builds length-aware page envelopes in the
// {data, links, meta} shape consumed by the storefront and admin UI.
package paginate

import (
	"fmt"
	"net/url"
	"strconv"
)

type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type Meta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}

type Page[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// MaxPage bounds requested page numbers so offsets cannot overflow and
// the number of distinct cached pages per listing stays finite.
const MaxPage = 10000

// Normalize clamps a requested page number to [1, MaxPage].
func Normalize(page int) int {
	if page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// Offset returns the row offset of page for the given page size.
func Offset(page, perPage int) int {
	return (Normalize(page) - 1) * perPage
}

// New wraps one page of items. path is the listing URL without query string,
// links append ?page=N to it.
func New[T any](items []T, total int64, page, perPage int, path string) *Page[T] {
	page = Normalize(page)
	if items == nil {
		items = make([]T, 0)
	}

	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}

	meta := Meta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     perPage,
		Total:       total,
	}
	if len(items) > 0 {
		from := Offset(page, perPage) + 1
		to := from + len(items) - 1
		meta.From = &from
		meta.To = &to
	}

	links := Links{
		First: pageURL(path, 1),
		Last:  pageURL(path, lastPage),
	}
	if page > 1 {
		prev := pageURL(path, min(page-1, lastPage))
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(path, page+1)
		links.Next = &next
	}

	return &Page[T]{Data: items, Links: links, Meta: meta}
}

// Map converts the items of a page while keeping its links and meta.
func Map[T, R any](p *Page[T], fn func(T) R) *Page[R] {
	out := make([]R, 0, len(p.Data))
	for _, item := range p.Data {
		out = append(out, fn(item))
	}
	return &Page[R]{Data: out, Links: p.Links, Meta: p.Meta}
}

func pageURL(path string, page int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return fmt.Sprintf("%s?%s", path, q.Encode())
}
