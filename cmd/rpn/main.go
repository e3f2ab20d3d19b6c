package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/rpn"
)

func main() {
	var (
		inname, verb, prompt, level string
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&prompt, "prompt", "> ", "prompt shown before reading each line from stdin")
	flag.StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := newLogger(os.Stderr, level)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad -log-level")
	}

	c := calc{out: os.Stdout, verb: verb + "\n", log: logger}
	for _, arg := range flag.Args() {
		c.line(arg)
	}

	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open input")
	}
	if f == nil {
		return
	}
	defer f.Close()
	if f == os.Stdin {
		c.prompt = prompt
	}
	if err := c.run(f); err != nil {
		logger.Fatal().Err(err).Msg("failed to read input")
	}
}

// newLogger creates a console logger at the named level. If the level is
// invalid, the logger is still usable, at warn level, along with the error.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return logger.Level(zerolog.WarnLevel), errors.Wrapf(err, "log level %q", level)
	}
	return logger.Level(lvl), nil
}

// calc evaluates expressions and writes their results.
type calc struct {
	out    io.Writer
	verb   string
	prompt string
	log    zerolog.Logger
}

// run evaluates each line of in as an expression until EOF. Lines may be of
// any length.
func (c *calc) run(in io.Reader) error {
	rd := bufio.NewReader(in)
	for {
		if c.prompt != "" {
			if _, err := io.WriteString(c.out, c.prompt); err != nil {
				return errors.Wrap(err, "writing prompt")
			}
		}
		s, err := rd.ReadString('\n')
		if s != "" {
			s = strings.TrimSuffix(s, "\n")
			c.line(strings.TrimSuffix(s, "\r"))
		}
		if err != nil {
			if err != io.EOF {
				return errors.Wrap(err, "reading expressions")
			}
			break
		}
	}
	if c.prompt != "" {
		// Finish the last prompt's line.
		if _, err := io.WriteString(c.out, "\n"); err != nil {
			return errors.Wrap(err, "writing prompt")
		}
	}
	return nil
}

// line evaluates one expression and prints either its result or the error
// message.
func (c *calc) line(src string) {
	r, err := c.eval(src)
	if err != nil {
		c.log.Debug().Str("src", src).Err(err).Msg("rejected")
		fmt.Fprintln(c.out, err)
		return
	}
	c.log.Debug().Str("src", src).Float64("result", r).Msg("evaluated")
	fmt.Fprintf(c.out, c.verb, r)
}

// eval runs the steps of rpn.Evaluate so that the tokens can be logged.
func (c *calc) eval(src string) (float64, error) {
	toks, err := rpn.TokenizeString(src)
	if err != nil {
		return 0, err
	}
	c.log.Debug().Str("src", src).Stringer("tokens", tokens(toks)).Msg("tokenized")
	a, err := rpn.Parse(toks)
	if err != nil {
		return 0, err
	}
	return a.Eval(), nil
}

type tokens []rpn.Token

func (t tokens) String() string {
	s := make([]string, len(t))
	for i, tok := range t {
		s[i] = tok.String()
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", inname)
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
