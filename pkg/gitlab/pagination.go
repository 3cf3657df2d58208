package gitlab

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	// DefaultPage: номер первой страницы.
	DefaultPage = 1
	// DefaultPerPage: размер страницы по умолчанию.
	DefaultPerPage = 20
	// DefaultMinPerPage: минимальный допустимый размер страницы.
	DefaultMinPerPage = 1
	// DefaultMaxPerPage: максимальный размер страницы, который принимает GitLab.
	DefaultMaxPerPage = 100
)

// Заголовки пагинации GitLab.
const (
	headerPage       = "X-Page"
	headerPerPage    = "X-Per-Page"
	headerTotal      = "X-Total"
	headerTotalPages = "X-Total-Pages"
	headerNextPage   = "X-Next-Page"
	headerPrevPage   = "X-Prev-Page"
)

// ListOptions: номер и размер запрашиваемой страницы.
type ListOptions struct {
	// Page: номер страницы, начиная с 1
	Page int
	// PerPage: количество элементов на странице
	PerPage int
}

// DefaultListOptions возвращает первую страницу размера DefaultPerPage.
func DefaultListOptions() ListOptions {
	return ListOptions{Page: DefaultPage, PerPage: DefaultPerPage}
}

// Next возвращает параметры следующей страницы того же размера.
func (o ListOptions) Next() ListOptions {
	return ListOptions{Page: o.Page + 1, PerPage: o.PerPage}
}

// PageBounds: допустимый диапазон размера страницы.
type PageBounds struct {
	MinPerPage int
	MaxPerPage int
}

// Validate проверяет номер и размер страницы.
func (b PageBounds) Validate(opt ListOptions) error {
	if opt.Page < 1 {
		return NewValidationError("page", fmt.Sprintf("номер страницы должен быть >= 1, получено %d", opt.Page))
	}
	if opt.PerPage < b.MinPerPage || opt.PerPage > b.MaxPerPage {
		return NewValidationError("per_page", fmt.Sprintf(
			"размер страницы должен быть в диапазоне [%d, %d], получено %d",
			b.MinPerPage, b.MaxPerPage, opt.PerPage))
	}
	return nil
}

// PagedResult: страница элементов вместе с метаданными из заголовков ответа.
type PagedResult[T any] struct {
	// Items: элементы текущей страницы
	Items []T `json:"items"`
	// Page: номер текущей страницы
	Page int `json:"page"`
	// PerPage: размер страницы
	PerPage int `json:"per_page"`
	// Total: общее количество элементов (0, если сервер его не сообщил)
	Total int `json:"total"`
	// TotalPages: общее количество страниц (0, если сервер его не сообщил)
	TotalPages int `json:"total_pages"`
	// NextPage: номер следующей страницы (0, если её нет)
	NextPage int `json:"next_page"`
	// PrevPage: номер предыдущей страницы (0, если её нет)
	PrevPage int `json:"prev_page"`
}

// HasNext сообщает, есть ли следующая страница.
func (p *PagedResult[T]) HasNext() bool {
	return p.NextPage > 0
}

// newPagedResult заполняет метаданные страницы из заголовков ответа.
// Отсутствующие X-Page и X-Per-Page заменяются запрошенными значениями.
func newPagedResult[T any](items []T, header http.Header, requested ListOptions) *PagedResult[T] {
	return &PagedResult[T]{
		Items:      items,
		Page:       headerInt(header, headerPage, requested.Page),
		PerPage:    headerInt(header, headerPerPage, requested.PerPage),
		Total:      headerInt(header, headerTotal, 0),
		TotalPages: headerInt(header, headerTotalPages, 0),
		NextPage:   headerInt(header, headerNextPage, 0),
		PrevPage:   headerInt(header, headerPrevPage, 0),
	}
}

func headerInt(header http.Header, name string, fallback int) int {
	raw := header.Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
