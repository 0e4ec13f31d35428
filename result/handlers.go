package result

type handlerConfig struct {
	final bool
}

// HandlerOption tunes a When* combinator.
type HandlerOption func(*handlerConfig)

// NotFinal keeps the outcome unconsumed after the handler runs, so later
// handlers in the chain still see the match.
func NotFinal() HandlerOption {
	return func(c *handlerConfig) {
		c.final = false
	}
}

func applyHandlerOptions(opts []HandlerOption) handlerConfig {
	cfg := handlerConfig{final: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func finish[T any](o Outcome[T], cfg handlerConfig) Outcome[T] {
	if cfg.final {
		return Consume(o)
	}
	return o
}

// WhenMatched calls fn with the value when o is Matched. Any other state,
// including Consumed, passes through without calling fn.
func (o Outcome[T]) WhenMatched(fn func(T), opts ...HandlerOption) Outcome[T] {
	if o.state != Matched {
		return o
	}
	fn(o.value)
	return finish(o, applyHandlerOptions(opts))
}

// WhenUnmatched calls fn with the errors when o is Unmatched.
func (o Outcome[T]) WhenUnmatched(fn func([]Error), opts ...HandlerOption) Outcome[T] {
	if o.state != Unmatched {
		return o
	}
	fn(o.errs)
	return finish(o, applyHandlerOptions(opts))
}

// WhenMatchedAs calls fn when o is Matched and the value's dynamic type is
// exactly T. Values of other types pass through untouched, so one handler per
// candidate shape can be chained on the same outcome.
func WhenMatchedAs[T any](o Outcome[any], fn func(T), opts ...HandlerOption) Outcome[any] {
	if o.state != Matched {
		return o
	}
	v, ok := o.value.(T)
	if !ok {
		return o
	}
	fn(v)
	return finish(o, applyHandlerOptions(opts))
}
