package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/sanity-io/litter"
)

var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))

// Log returns the logger debug output is written to.
func Log() *slog.Logger {
	return theLog
}

// Logf formats msg with args and logs the result at debug level. Arguments
// implementing json.Marshaler (nodes, ops, deltas) are rendered as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case fmt.Stringer:
		case json.Marshaler:
			d, err := x.MarshalJSON()
			if err != nil {
				args[i] = fmt.Sprintf("[raw] %v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	theLog.Debug(fmt.Sprintf(msg, args...))
}

var dumper = litter.Options{
	HidePrivateFields: true,
	StripPackageNames: true,
	Compact:           false,
}

// Dump returns a go-syntax like rendering of vs, for debugging.
func Dump(vs ...any) string {
	return dumper.Sdump(vs...)
}
