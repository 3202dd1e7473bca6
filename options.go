package calculator

import "log/slog"

// Option is an option for tokenizing, converting, or evaluating expressions.
// Options apply in order, so later options override earlier ones.
type Option interface {
	option(pipectx) pipectx
}

// pipectx holds the settings shared by every stage of the pipeline. It is
// rebuilt on each call, so no state is shared between calls.
type pipectx struct {
	// lenient selects the substitution policy over the error policy.
	lenient bool
	// log receives debug traces of each stage. nil disables tracing.
	log *slog.Logger
}

type (
	policyopt bool
	logopt    struct{ l *slog.Logger }
)

// Strict selects the error policy: unrecognized characters, malformed
// numbers, unbalanced parentheses, missing operands, and results other than a
// single value are all reported as errors. This is the default.
func Strict() Option {
	return policyopt(false)
}

// Lenient selects the substitution policy: unrecognized characters are
// skipped, malformed numbers are 0, unbalanced parentheses are ignored,
// missing operands are replaced by 0 (or 1 for a divisor), an empty result is
// 0, and the last value pushed wins when more than one remains.
//
// Operators and functions that no expression text can produce, i.e. those in
// hand-built tokens, are still errors.
func Lenient() Option {
	return policyopt(true)
}

func (o policyopt) option(p pipectx) pipectx {
	p.lenient = bool(o)
	return p
}

// Logger sets a logger to receive debug-level traces of each pipeline stage.
// A nil logger disables tracing.
func Logger(l *slog.Logger) Option {
	return logopt{l}
}

func (o logopt) option(p pipectx) pipectx {
	p.log = o.l
	return p
}

func newpipectx(opts []Option) pipectx {
	var p pipectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.option(p)
	}
	return p
}

// trace logs a stage result if a logger is set.
func (p *pipectx) trace(stage string, args ...any) {
	if p.log == nil {
		return
	}
	p.log.Debug(stage, args...)
}
