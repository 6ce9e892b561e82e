package textab

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithStyle supplies the style configuration consumed by the styled
// variant and by default-font resolution.
func WithStyle(s Style) EncoderOption {
	return func(e *Encoder) { e.style = &s }
}

// WithCapabilities supplies the capability provider the encoder queries
// before emitting feature-dependent markup. A nil provider is ignored.
func WithCapabilities(cp CapabilityProvider) EncoderOption {
	return func(e *Encoder) {
		if cp != nil {
			e.caps = cp
		}
	}
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithNotation sets custom expression delimiters (default "${", "}").
func WithNotation(begin, end string) ContextOption {
	return func(c *Context) {
		c.notationBegin = begin
		c.notationEnd = end
	}
}

// WithEvaluator sets a custom expression evaluator.
func WithEvaluator(ev ExpressionEvaluator) ContextOption {
	return func(c *Context) { c.evaluator = ev }
}
