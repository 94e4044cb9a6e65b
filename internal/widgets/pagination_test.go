package widgets_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/widgets"
)

func TestWindowsAreDisjointAndCover(t *testing.T) {
	for total := 0; total <= 20; total++ {
		for perPage := 1; perPage <= 7; perPage++ {
			seen := make([]int, total)
			pages := widgets.PageCount(total, perPage)
			for page := 0; page < pages; page++ {
				req := widgets.Window(total, perPage, page)
				require.Equal(t, perPage, req.PerPage)
				for i := req.Skip; i < req.Skip+req.PerPage && i < total; i++ {
					seen[i]++
				}
			}
			for i, n := range seen {
				require.Equal(t, 1, n, "total=%d perPage=%d element %d", total, perPage, i)
			}
		}
	}
}

func TestWindowEightByThree(t *testing.T) {
	require.Equal(t, 3, widgets.PageCount(8, 3))
	var skips []int
	for page := 0; page < 3; page++ {
		skips = append(skips, widgets.Window(8, 3, page).Skip)
	}
	require.Equal(t, []int{0, 3, 6}, skips)
	require.Equal(t, 6, widgets.Window(8, 3, 99).Skip)
}

func newNumberPager(t *testing.T, total int, position widgets.Position) (*widgets.Pagination[int], *[]widgets.PageRequest) {
	t.Helper()
	var requests []widgets.PageRequest
	m, _ := rootMount()
	var p *widgets.Pagination[int]
	p = widgets.NewPagination(m, widgets.PaginationProps[int]{
		PerPage:  3,
		Position: position,
		Total:    func(context.Context) (int, error) { return total, nil },
		LoadPage: func(_ context.Context, req widgets.PageRequest) ([]int, error) {
			requests = append(requests, req)
			var out []int
			for i := req.Skip; i < req.Skip+req.PerPage && i < total; i++ {
				out = append(out, i)
			}
			return out, nil
		},
		RenderPage: widgets.RenderAsButtonsGrid(3, func(n int) (component.Button, error) {
			return p.Button(strconv.Itoa(n), p.Handler(widgets.HandlerNoop))
		}),
	})
	return p, &requests
}

func TestPaginationNavigation(t *testing.T) {
	p, requests := newNumberPager(t, 8, widgets.PositionDefault)

	out := render(t, p)
	require.Equal(t, [][]string{{"0", "1", "2"}, {"1 / 3", "›"}}, labels(out.Keyboard))

	require.NoError(t, press(t, p, findButton(t, out.Keyboard, "›")))
	out = render(t, p)
	require.Equal(t, [][]string{{"3", "4", "5"}, {"‹", "2 / 3", "›"}}, labels(out.Keyboard))

	require.NoError(t, press(t, p, findButton(t, out.Keyboard, "›")))
	out = render(t, p)
	require.Equal(t, [][]string{{"6", "7"}, {"‹", "3 / 3"}}, labels(out.Keyboard))

	require.NoError(t, press(t, p, findButton(t, out.Keyboard, "3 / 3")))
	require.Equal(t, 2, p.Page())

	require.Equal(t, []widgets.PageRequest{
		{PerPage: 3, Skip: 0},
		{PerPage: 3, Skip: 3},
		{PerPage: 3, Skip: 6},
	}, *requests)
}

func TestPaginationClampsStalePage(t *testing.T) {
	p, requests := newNumberPager(t, 8, widgets.PositionBottom)
	p.SetPage(10)

	out := render(t, p)
	require.Equal(t, [][]string{{"6", "7"}, {"‹", "3 / 3"}}, labels(out.Keyboard))
	require.Equal(t, []widgets.PageRequest{{PerPage: 3, Skip: 6}}, *requests)
}

func TestPaginationTopAndSinglePage(t *testing.T) {
	p, _ := newNumberPager(t, 5, widgets.PositionTop)
	out := render(t, p)
	require.Equal(t, [][]string{{"1 / 2", "›"}, {"0", "1", "2"}}, labels(out.Keyboard))

	single, _ := newNumberPager(t, 2, widgets.PositionTop)
	out = render(t, single)
	require.Equal(t, [][]string{{"0", "1"}}, labels(out.Keyboard))

	empty, _ := newNumberPager(t, 0, widgets.PositionTop)
	out = render(t, empty)
	require.Empty(t, out.Keyboard)
}

func TestRenderAsButtonsGrid(t *testing.T) {
	grid := widgets.RenderAsButtonsGrid(2, func(s string) (component.Button, error) {
		return component.Button{Label: s}, nil
	})
	out, err := grid(context.Background(), []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, labels(out.Keyboard))
}
