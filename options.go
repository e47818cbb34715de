package nlisp

// Option configures an Evaluator.
type Option interface{ apply(ev *Evaluator) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(ev *Evaluator) {
	ev.logfn = logfn
}

type withBuiltin Builtin

func (b withBuiltin) apply(ev *Evaluator) {
	if ev.st == builtins {
		ev.st = builtins.clone()
	}
	ev.st.Replace(Builtin(b))
}

// WithLogf traces every evaluation step through logfn.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithBuiltin adds or replaces an operator. Only reserved symbol names can be
// reached from source text; giving one of them a Fn implements it.
func WithBuiltin(b Builtin) Option { return withBuiltin(b) }
