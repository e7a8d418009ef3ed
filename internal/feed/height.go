package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const (
	DefaultLinearHeightExpr    = "1"
	DefaultStaggeredHeightExpr = "1 + Value % 3"

	// MaxItemHeight caps a single row, in terminal lines.
	MaxItemHeight = 16
)

// ItemEnv is the environment height expressions are evaluated in.
type ItemEnv struct {
	Index int
	Value int
	Tag   int
}

// HeightFunc returns the height of the item at index i, always within [1, MaxItemHeight].
type HeightFunc func(i int) int

// FixedHeight returns a HeightFunc that always yields h, clamped like any other height.
func FixedHeight(h int) HeightFunc {
	h = min(max(h, 1), MaxItemHeight)
	return func(int) int { return h }
}

// CompileHeight compiles an expr-lang expression into a HeightFunc for the list with the given tag.
// A plain integer skips the expression VM entirely.
func CompileHeight(expression string, tag int, source Source) (HeightFunc, error) {
	if h, err := strconv.Atoi(strings.TrimSpace(expression)); err == nil {
		return FixedHeight(h), nil
	}

	program, err := expr.Compile(expression, expr.Env(ItemEnv{}), expr.AsInt())
	if err != nil {
		return nil, fmt.Errorf("compiling height expression %q: %w", expression, err)
	}

	// validate once against the first item, so broken expressions fail on startup
	if source.Len() > 0 {
		if _, err := evalHeight(program, ItemEnv{Index: 0, Value: int(source.At(0)), Tag: tag}); err != nil {
			return nil, fmt.Errorf("evaluating height expression %q: %w", expression, err)
		}
	}

	return func(i int) int {
		h, err := evalHeight(program, ItemEnv{Index: i, Value: int(source.At(i)), Tag: tag})
		if err != nil {
			// runtime errors (e.g. modulo by zero for some value) fall back to a single line
			return 1
		}
		return h
	}, nil
}

func evalHeight(program *vm.Program, env ItemEnv) (int, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, err
	}
	h, ok := out.(int)
	if !ok {
		return 0, fmt.Errorf("expected int, got %T", out)
	}
	return min(max(h, 1), MaxItemHeight), nil
}
