package eval

import (
	"os"

	"github.com/signadot/delta/internal/utf16x"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.Function("utf16len", func(params ...any) (any, error) {
			return utf16x.Len(params[0].(string)), nil
		},
			new(func(string) int)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
