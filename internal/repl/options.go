package repl

import (
	"io"
	"strings"

	nlisp "github.com/nathannewcomer/nLisp"
)

// Option configures a Session.
type Option interface{ apply(s *Session) }

var defaults = []Option{
	WithInput(strings.NewReader("")),
	WithOutput(io.Discard),
}

func (s *Session) apply(opts ...Option) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(s)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(s)
		}
	}
	if s.errOut == nil {
		s.errOut = s.out
	}
}

type inputOption struct{ io.Reader }
type lineReaderOption struct{ LineReader }
type outputOption struct{ io.Writer }
type errorOutputOption struct{ io.Writer }
type promptOption string
type colorOption bool
type showParseOption bool
type withLogfn func(mess string, args ...interface{})

// WithInput sets where Run reads lines from.
func WithInput(r io.Reader) Option { return inputOption{r} }

// WithLineReader makes Run read through lr, which shows the prompt itself,
// instead of the input reader.
func WithLineReader(lr LineReader) Option { return lineReaderOption{lr} }

// WithOutput sets where results are printed.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithErrorOutput sets where errors are printed; defaults to the output.
func WithErrorOutput(w io.Writer) Option { return errorOutputOption{w} }

// WithPrompt sets the text written before each line read by Run. An empty
// prompt disables it.
func WithPrompt(prompt string) Option { return promptOption(prompt) }

// WithColor prints errors in red.
func WithColor(enabled bool) Option { return colorOption(enabled) }

// WithShowParse prints every parsed tree before evaluating it.
func WithShowParse(enabled bool) Option { return showParseOption(enabled) }

// WithLogf traces session and evaluator activity through logfn.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

func (i inputOption) apply(s *Session)       { s.in = i.Reader }
func (l lineReaderOption) apply(s *Session)  { s.lines = l.LineReader }
func (o outputOption) apply(s *Session)      { s.out = o.Writer }
func (o errorOutputOption) apply(s *Session) { s.errOut = o.Writer }
func (p promptOption) apply(s *Session)      { s.prompt = string(p) }
func (c colorOption) apply(s *Session)       { s.color = bool(c) }
func (sp showParseOption) apply(s *Session)  { s.showParse = bool(sp) }

func (logfn withLogfn) apply(s *Session) {
	s.logfn = logfn
	s.ev = nlisp.New(nlisp.WithLogf(logfn))
}
