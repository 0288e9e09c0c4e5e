package schema

import "go.uber.org/zap"

// Next is the downstream call handler a validating wrapper guards. It
// matches the chain's composed call shape: an explicit receiver plus the
// raw argument list.
type Next func(recv any, args ...any) any

// Wrap builds the validating replacement for a member's call and set
// handlers. Every argument must satisfy t; a zero-argument invocation
// (read-style) passes through untouched.
//
// Outcome routing and failure policy live entirely here: a valid value is
// reported to onValid and forwarded to next; an invalid one is reported to
// onInvalid when configured, otherwise logged at warn level, and the write
// is skipped. The wrapper never panics and never returns an error - the
// core stays unaware of validation outcomes.
func Wrap(name string, t *Type, onValid, onInvalid func(v any), logger *zap.Logger, next Next) Next {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(recv any, args ...any) any {
		if len(args) == 0 {
			return next(recv)
		}
		for _, arg := range args {
			if Validate(t, arg) {
				continue
			}
			if onInvalid != nil {
				onInvalid(arg)
				return nil
			}
			logger.Warn("validation failed",
				zap.String("member", name),
				zap.String("type", t.String()),
			)
			return nil
		}
		if onValid != nil {
			onValid(args[0])
		}
		return next(recv, args...)
	}
}
