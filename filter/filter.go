// Package filter compiles expr-lang expressions into predicates over
// anime records, with helper functions for themes, artists, sites and
// dates. Expressions evaluate against the flattened AnimeInfo view.
package filter

import (
	"strings"

	"github.com/buzzbyte/animethemes-go/animethemes"
)

// defaultCompiler backs the package-level helpers. The cache keeps
// repeated CLI invocations of the same expression cheap.
var defaultCompiler = NewExprCompiler(WithCache(128))

// CompileFilter compiles an expression using the shared default compiler.
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// ParseAndCreateFilter parses a filter expression and returns a filter
// function. An empty expression matches everything.
func ParseAndCreateFilter(expression string) (func(AnimeInfo) bool, error) {
	if strings.TrimSpace(expression) == "" {
		return func(AnimeInfo) bool { return true }, nil
	}

	filter, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}

	return filter.Evaluate, nil
}

// Apply evaluates a filter against a list of anime and returns the
// matching records in their original order.
func Apply(filter Filter, anime []*animethemes.Anime) []*animethemes.Anime {
	matched := make([]*animethemes.Anime, 0, len(anime))
	for _, a := range anime {
		if filter.Evaluate(NewAnimeInfo(a)) {
			matched = append(matched, a)
		}
	}
	return matched
}

// ApplyExpression compiles an expression and applies it in one step.
func ApplyExpression(expression string, anime []*animethemes.Anime) ([]*animethemes.Anime, error) {
	predicate, err := ParseAndCreateFilter(expression)
	if err != nil {
		return nil, err
	}

	matched := make([]*animethemes.Anime, 0, len(anime))
	for _, a := range anime {
		if predicate(NewAnimeInfo(a)) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
