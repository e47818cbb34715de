// Package repl runs read-eval-print cycles over interactive input or files.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	nlisp "github.com/nathannewcomer/nLisp"
	"github.com/nathannewcomer/nLisp/ast"
	"github.com/nathannewcomer/nLisp/internal/panicerr"
	"github.com/nathannewcomer/nLisp/lexer"
	"github.com/nathannewcomer/nLisp/parser"
)

// Session reads lines, evaluates every expression on them and prints the
// results. A failed line is reported and does not stop the session.
type Session struct {
	in        io.Reader
	lines     LineReader
	out       io.Writer
	errOut    io.Writer
	prompt    string
	color     bool
	showParse bool
	logfn     func(mess string, args ...interface{})
	ev        *nlisp.Evaluator
}

// New creates a session; with no options it reads nothing and discards
// output.
func New(opts ...Option) *Session {
	s := &Session{ev: nlisp.New()}
	s.apply(opts...)
	return s
}

// LineReader reads one line of interactive input after showing prompt. It
// returns io.EOF when input ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// readLine returns the next line of br without its line ending. Lines have
// no length limit; a final line without a line feed is still returned.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), err
}

type bufReader struct {
	br  *bufio.Reader
	out io.Writer
}

func (br bufReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(br.out, prompt)
	}
	line, err := readLine(br.br)
	if err == io.EOF && prompt != "" {
		fmt.Fprintln(br.out)
	}
	return line, err
}

// Run processes input lines until EOF, which ends the session with a nil
// error. Cancelling ctx stops it before the next line is read.
func (s *Session) Run(ctx context.Context) error {
	lr := s.lines
	if lr == nil {
		lr = bufReader{br: bufio.NewReader(s.in), out: s.out}
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := lr.ReadLine(s.prompt)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrap(err, "failed to read input")
		}
		if err := s.Cycle(line); err != nil {
			s.report(err)
		}
	}
}

// Load evaluates every line read from r, which is named name in error
// locations. All failing lines are reported, and returned together.
func (s *Session) Load(ctx context.Context, name string, r io.Reader) error {
	var errs *multierror.Error
	br := bufio.NewReader(r)
	for loc := (Location{Name: name, Line: 1}); ; loc.Line++ {
		if err := ctx.Err(); err != nil {
			return multierror.Append(errs, err).ErrorOrNil()
		}
		line, err := readLine(br)
		if err == io.EOF {
			break
		} else if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "failed to read %v", name))
			break
		}
		if err := s.Cycle(line); err != nil {
			lerr := &LineError{Location: loc, Err: err}
			s.report(lerr)
			errs = multierror.Append(errs, lerr)
		}
	}
	return errs.ErrorOrNil()
}

// Cycle reads, evaluates and prints one line. Evaluation stops at the first
// failing expression.
func (s *Session) Cycle(line string) error {
	return panicerr.Recover("cycle", func() error {
		s.logf("read %q", line)
		exprs, err := parser.ParseAll(lexer.Scan(line))
		if err != nil {
			return err
		}
		for _, expr := range exprs {
			if s.showParse {
				fmt.Fprintf(s.out, "Parsed as: %v\n", ast.Encode(expr))
				ast.Print(s.out, expr)
			}
			result, err := s.ev.Eval(expr)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ast.Encode(result))
		}
		return nil
	})
}

func (s *Session) report(err error) {
	if s.color {
		c := color.New(color.FgRed)
		c.EnableColor()
		c.Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.errOut, "error: %v\n", err)
}

func (s *Session) logf(mess string, args ...interface{}) {
	if s.logfn != nil {
		s.logfn(mess, args...)
	}
}
