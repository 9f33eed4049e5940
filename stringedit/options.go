package stringedit

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type options struct {
	logger       *zap.Logger
	required     bool
	canonicalize bool
	secure       bool
	placeholder  *string
	locale       language.Tag
}

// Option configures an Editor.
type Option func(*options)

func buildOptions(opts []Option) options {
	o := options{
		logger:       zap.NewNop(),
		canonicalize: true,
		locale:       language.Und,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// WithLogger sets the logger for sanitize adjustments, rejected edits and
// contract violations.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRequired makes Validate report ErrRequired for the empty value.
func WithRequired() Option {
	return func(o *options) { o.required = true }
}

// WithoutCanonicalize keeps the typed display text when editing ends.
func WithoutCanonicalize() Option {
	return func(o *options) { o.canonicalize = false }
}

// WithSecure asks hosts to mask the text.
func WithSecure() Option {
	return func(o *options) { o.secure = true }
}

// WithPlaceholder overrides the placeholder, which defaults to the display
// text of the empty value.
func WithPlaceholder(s string) Option {
	return func(o *options) { o.placeholder = &s }
}

// WithLocale sets the display locale of number editors. Other editors
// ignore it.
func WithLocale(tag language.Tag) Option {
	return func(o *options) { o.locale = tag }
}
