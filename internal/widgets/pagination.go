package widgets

import (
	"context"
	"fmt"

	"github.com/atomicstack/chatmenu/internal/component"
)

// PageRequest selects one window of a paginated list.
type PageRequest struct {
	PerPage int
	Skip    int
}

// Position places the navigation row relative to the page.
type Position int

const (
	// PositionDefault lets the owning widget choose.
	PositionDefault Position = iota
	PositionBottom
	PositionTop
)

// Pagination handler names.
const (
	HandlerSetPage = "setPage"
	HandlerNoop    = "noop"
)

// PageKey is the pagination state key holding the zero-based page.
const PageKey = "value"

// DefaultPerPage is used when PaginationProps.PerPage is zero.
const DefaultPerPage = 6

// PaginationProps configures a Pagination.
type PaginationProps[T any] struct {
	PerPage  int
	Position Position
	LoadPage func(ctx context.Context, req PageRequest) ([]T, error)
	Total    func(ctx context.Context) (int, error)
	// RenderPage renders the loaded elements, usually via RenderAsButtonsGrid.
	RenderPage func(ctx context.Context, items []T) (component.RenderResult, error)
}

// Pagination renders one page of a lazily loaded list plus a navigation row.
type Pagination[T any] struct {
	*component.Base

	props PaginationProps[T]
}

// NewPagination mounts a Pagination.
func NewPagination[T any](m component.Mount, props PaginationProps[T]) *Pagination[T] {
	if props.PerPage <= 0 {
		props.PerPage = DefaultPerPage
	}
	if props.Position == PositionDefault {
		props.Position = PositionBottom
	}
	p := &Pagination[T]{props: props}
	p.Base = component.NewBase(m, p.DefaultState)
	p.Handle(HandlerSetPage, "p", p.onSetPage)
	p.Handle(HandlerNoop, "n", func(context.Context, component.Event) error { return nil })
	return p
}

func (p *Pagination[T]) DefaultState() component.State {
	return component.State{PageKey: 0}
}

// Page returns the stored page, not yet clamped to the current total.
func (p *Pagination[T]) Page() int {
	return component.Int(p.GetState(), PageKey)
}

// SetPage stores page as the current page.
func (p *Pagination[T]) SetPage(page int) {
	p.PatchState(component.State{PageKey: page})
}

func (p *Pagination[T]) onSetPage(_ context.Context, ev component.Event) error {
	var page int
	if err := ev.Arg.Decode(&page); err != nil {
		return err
	}
	p.SetPage(page)
	return nil
}

// PageCount returns how many pages total elements span.
func PageCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// ClampPage keeps page inside [0, pages).
func ClampPage(page, pages int) int {
	if page >= pages {
		page = pages - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

// Window returns the request for page. Windows of consecutive pages are
// disjoint and together cover [0, total).
func Window(total, perPage, page int) PageRequest {
	page = ClampPage(page, PageCount(total, perPage))
	return PageRequest{PerPage: perPage, Skip: page * perPage}
}

func (p *Pagination[T]) Render(ctx context.Context) (component.RenderResult, error) {
	if p.props.Total == nil || p.props.LoadPage == nil || p.props.RenderPage == nil {
		return component.RenderResult{}, fmt.Errorf("pagination at %q: LoadPage, Total and RenderPage are required", p.Path())
	}
	total, err := p.props.Total(ctx)
	if err != nil {
		return component.RenderResult{}, fmt.Errorf("pagination total: %w", err)
	}
	pages := PageCount(total, p.props.PerPage)
	page := ClampPage(p.Page(), pages)
	items, err := p.props.LoadPage(ctx, Window(total, p.props.PerPage, page))
	if err != nil {
		return component.RenderResult{}, fmt.Errorf("pagination load page %d: %w", page, err)
	}
	body, err := p.props.RenderPage(ctx, items)
	if err != nil {
		return component.RenderResult{}, err
	}
	nav, err := p.navigation(page, pages)
	if err != nil {
		return component.RenderResult{}, err
	}
	if p.props.Position == PositionTop {
		return component.Concat(component.Empty().Row(nav...), body), nil
	}
	return body.Row(nav...), nil
}

// navigation returns no buttons when everything fits on one page.
func (p *Pagination[T]) navigation(page, pages int) ([]component.Button, error) {
	if pages <= 1 {
		return nil, nil
	}
	var row []component.Button
	if page > 0 {
		prev, err := p.Button("‹", p.Handler(HandlerSetPage), page-1)
		if err != nil {
			return nil, err
		}
		row = append(row, prev)
	}
	indicator, err := p.Button(fmt.Sprintf("%d / %d", page+1, pages), p.Handler(HandlerNoop))
	if err != nil {
		return nil, err
	}
	row = append(row, indicator)
	if page < pages-1 {
		next, err := p.Button("›", p.Handler(HandlerSetPage), page+1)
		if err != nil {
			return nil, err
		}
		row = append(row, next)
	}
	return row, nil
}

// ElementRenderer renders one element of a grid.
type ElementRenderer[T any] func(element T) (component.Button, error)

// RenderAsButtonsGrid lays the page out as rows of at most columns buttons.
func RenderAsButtonsGrid[T any](columns int, renderElement ElementRenderer[T]) func(context.Context, []T) (component.RenderResult, error) {
	if columns <= 0 {
		columns = 1
	}
	return func(_ context.Context, items []T) (component.RenderResult, error) {
		out := component.Empty()
		row := make([]component.Button, 0, columns)
		for _, item := range items {
			btn, err := renderElement(item)
			if err != nil {
				return component.RenderResult{}, err
			}
			row = append(row, btn)
			if len(row) == columns {
				out = out.Row(row...)
				row = make([]component.Button, 0, columns)
			}
		}
		return out.Row(row...), nil
	}
}
