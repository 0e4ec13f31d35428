package parser

import (
	"github.com/footprint-tools/verbparse/bind"
	"github.com/footprint-tools/verbparse/resolve"
	"github.com/footprint-tools/verbparse/settings"
	"github.com/footprint-tools/verbparse/token"
)

// Option configures a Parser.
type Option func(*Parser)

// WithSettings uses a fixed settings value.
func WithSettings(s settings.Settings) Option {
	return func(p *Parser) {
		p.settings = settings.Static(s)
	}
}

// WithSettingsFunc uses fn to produce settings. fn is called once per parse
// call and its result is used for the whole call.
func WithSettingsFunc(fn settings.Provider) Option {
	return func(p *Parser) {
		p.settings = fn
	}
}

// WithTokenizer replaces the tokenizer stage.
func WithTokenizer(t token.Tokenizer) Option {
	return func(p *Parser) {
		p.tokenizer = t
	}
}

// WithResolver replaces the type resolution stage.
func WithResolver(r resolve.Resolver) Option {
	return func(p *Parser) {
		p.resolver = r
	}
}

// WithBinder replaces the binding stage.
func WithBinder(b bind.Binder) Option {
	return func(p *Parser) {
		p.binder = b
	}
}

// WithConverters keeps the reflection binder but uses the given conversion
// table.
func WithConverters(c *bind.Converters) Option {
	return func(p *Parser) {
		p.binder = bind.NewReflectBinder(c)
	}
}

// WithLogger sets the logger receiving stage failures and faults.
func WithLogger(l Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}
