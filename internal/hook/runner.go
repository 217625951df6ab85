package hook

import (
	"fmt"
	"io"
)

// Handler evaluates one hook invocation.
type Handler func(Input) (Verdict, error)

// Logger records hook activity. It matches logging.Logger's signature.
type Logger interface {
	Printf(format string, args ...any)
}

// Runner executes a Handler under the fail-open guard.
type Runner struct {
	// Name prefixes log lines.
	Name string
	// Logger is read after the handler returns, so a handler may install it
	// once configuration has loaded.
	Logger Logger
}

// Main runs handler with a default Runner.
func Main(stdin io.Reader, stdout io.Writer, handler Handler) int {
	return (&Runner{}).Main(stdin, stdout, handler)
}

// Main reads stdin, evaluates handler, writes its verdict to stdout and
// returns the exit code the process should terminate with.
func (r *Runner) Main(stdin io.Reader, stdout io.Writer, handler Handler) int {
	input := ReadInput(stdin)
	verdict := evaluate(handler, input)
	r.logf("%s: %s", verdict.Result, verdict.Text())
	if err := Write(stdout, verdict); err != nil {
		r.logf("%v", err)
		return 0
	}
	return verdict.ExitCode()
}

func evaluate(handler Handler, input Input) (verdict Verdict) {
	defer func() {
		if recovered := recover(); recovered != nil {
			verdict = AllowThrough(fmt.Errorf("panic: %v", recovered))
		}
	}()
	if handler == nil {
		return AllowThrough(fmt.Errorf("hook: no handler"))
	}
	result, err := handler(input)
	if err != nil {
		return AllowThrough(err)
	}
	if err := result.Validate(); err != nil {
		return AllowThrough(err)
	}
	return result
}

func (r *Runner) logf(format string, args ...any) {
	if r == nil || r.Logger == nil {
		return
	}
	if r.Name != "" {
		format = r.Name + ": " + format
	}
	r.Logger.Printf(format, args...)
}
