package runtime

import (
	"context"
	"log/slog"

	"github.com/risor-io/risor/object"

	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
)

// makeLookupFn creates the "lookup" host function.
//
// lookup(kind, name) → {"kind", "index"} of the first declaration, or nil
func makeLookupFn(p *pool.Pool) *object.Builtin {
	return object.NewBuiltin("lookup", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("lookup", 2, len(args))
		}
		kindStr, err := toString(args[0])
		if err != nil {
			return object.Errorf("lookup: kind: %v", err)
		}
		name, err := toString(args[1])
		if err != nil {
			return object.Errorf("lookup: name: %v", err)
		}
		k, ok := model.ParseKind(kindStr)
		if !ok {
			return object.Errorf("lookup: unknown kind %q", kindStr)
		}
		id, ok := p.Lookup(k, name)
		if !ok {
			return object.Nil
		}
		return idToObject(id)
	})
}

// makeCountFn creates the "count" host function.
//
// count(kind) → number of declared objects of that kind
func makeCountFn(p *pool.Pool) *object.Builtin {
	return object.NewBuiltin("count", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("count", 1, len(args))
		}
		kindStr, err := toString(args[0])
		if err != nil {
			return object.Errorf("count: %v", err)
		}
		k, ok := model.ParseKind(kindStr)
		if !ok {
			return object.Errorf("count: unknown kind %q", kindStr)
		}
		return object.NewInt(int64(p.Len(k)))
	})
}

// logObject provides log.info/warn/error methods for Risor scripts.
type logObject struct {
	logger *slog.Logger
}

func (l *logObject) Info(msg string) {
	l.logger.Info(msg, "source", "script")
}

func (l *logObject) Warn(msg string) {
	l.logger.Warn(msg, "source", "script")
}

func (l *logObject) Error(msg string) {
	l.logger.Error(msg, "source", "script")
}
