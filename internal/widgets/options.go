package widgets

import (
	"context"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/chatmenu/internal/component"
)

// Option is one selectable entry of a SelectField.
type Option[T any] struct {
	Label string
	Value T
}

// OptionsFunc lazily produces the options for the current state, which lets
// the option set depend on the filter.
type OptionsFunc[T any] func(ctx context.Context, s component.State) ([]Option[T], error)

// FilterKey is the SelectField state key holding the free-text filter, or nil.
const FilterKey = "filter"

// BasicFilteredOptions filters options by case-insensitive substring match on
// the label, keeping their original order.
func BasicFilteredOptions[T any](options []Option[T]) OptionsFunc[T] {
	return func(_ context.Context, s component.State) ([]Option[T], error) {
		filter, ok := component.String(s, FilterKey)
		if !ok {
			return options, nil
		}
		needle := strings.ToLower(filter)
		out := make([]Option[T], 0, len(options))
		for _, option := range options {
			if strings.Contains(strings.ToLower(option.Label), needle) {
				out = append(out, option)
			}
		}
		return out, nil
	}
}

// FuzzyFilteredOptions filters options by fuzzy match on the label, keeping
// their original order. When nothing matches fuzzily it falls back to a
// substring match.
func FuzzyFilteredOptions[T any](options []Option[T]) OptionsFunc[T] {
	substring := BasicFilteredOptions(options)
	return func(ctx context.Context, s component.State) ([]Option[T], error) {
		filter, ok := component.String(s, FilterKey)
		trimmed := strings.TrimSpace(filter)
		if !ok || trimmed == "" {
			return options, nil
		}
		labels := make([]string, len(options))
		for i, option := range options {
			labels[i] = option.Label
		}
		ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
		if len(ranks) == 0 {
			return substring(ctx, s)
		}
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		out := make([]Option[T], 0, len(matches))
		for i, option := range options {
			if _, ok := matches[i]; ok {
				out = append(out, option)
			}
		}
		return out, nil
	}
}
