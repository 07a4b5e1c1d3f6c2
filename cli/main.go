package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"unicode"

	"github.com/rotorsim/rotorsim/core/engine"
	"github.com/rotorsim/rotorsim/core/format"
	"github.com/rotorsim/rotorsim/core/keysheet"
	"github.com/rotorsim/rotorsim/core/rotor"
	"github.com/rotorsim/rotorsim/pkg/logging"
	"github.com/rotorsim/rotorsim/pkg/machineflags"
	"github.com/rotorsim/rotorsim/pkg/securerandom"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const usage = `usage: rotorsim [-log-level level] [-log-format format] <command> [flags] [text...]

commands:
  encode   encode text given as arguments or on stdin
  trace    print the signal path of every letter
  type     key text at a fixed rate, printing each lamp as it lights
  catalog  list the available rotors and reflectors
  keygen   print a random daily key as a settings file
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, context.Canceled) {
			logging.GetLogger().Error("command failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	var logLevel, logFormat string
	global := flag.NewFlagSet("rotorsim", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	global.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	global.StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
	if err := global.Parse(args); err != nil {
		fmt.Fprint(stdout, usage)
		return errUsage
	}
	logging.InitLogger(logLevel, logFormat, nil)

	rest := global.Args()
	if len(rest) == 0 {
		fmt.Fprint(stdout, usage)
		return errUsage
	}

	switch rest[0] {
	case "encode":
		return runEncode(rest[1:], stdin, stdout)
	case "trace":
		return runTrace(rest[1:], stdin, stdout)
	case "type":
		return runType(ctx, rest[1:], stdin, stdout)
	case "catalog":
		return runCatalog(stdout)
	case "keygen":
		return runKeygen(rest[1:], stdout)
	default:
		logging.GetLogger().Error("unknown command", "command", rest[0])
		fmt.Fprint(stdout, usage)
		return errUsage
	}
}

// newMachine parses the machine flags of a subcommand and builds an engine.
func newMachine(name string, args []string, extra func(*flag.FlagSet), opts ...engine.Option) (*engine.Engine, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	mf := machineflags.Register(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	settings, err := mf.Settings(fs)
	if err != nil {
		return nil, nil, err
	}
	e, err := engine.New(settings, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid machine settings: %w", err)
	}
	logging.GetLogger().Debug("machine ready", "command", name, "machine", e.String())
	return e, fs.Args(), nil
}

// readText joins args, or reads all of stdin when there are none.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	buf, err := io.ReadAll(bufio.NewReader(stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(string(buf), "\r\n"), nil
}

func runEncode(args []string, stdin io.Reader, stdout io.Writer) error {
	var group, showTrace bool
	e, rest, err := newMachine("encode", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&group, "group", false, "Print letters only, in groups of five.")
		fs.BoolVar(&showTrace, "trace", false, "Also print the signal path of every letter.")
	})
	if err != nil {
		return err
	}
	if showTrace {
		e.SetTrace(func(path string) {
			fmt.Fprintln(stdout, path)
		})
	}

	text, err := readText(rest, stdin)
	if err != nil {
		return err
	}
	out := e.Encode(text)
	if group {
		out = format.GroupLetters(out)
	}
	fmt.Fprintln(stdout, out)
	return nil
}

func runTrace(args []string, stdin io.Reader, stdout io.Writer) error {
	var last string
	e, rest, err := newMachine("trace", args, nil, engine.WithTrace(func(path string) {
		last = path
	}))
	if err != nil {
		return err
	}

	text, err := readText(rest, stdin)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY	POSITION	PATH	LAMP")
	for _, ch := range text {
		if !isLetter(ch) {
			continue
		}
		lamp := e.EncodeChar(ch)
		// Positions after the key press are the ones the signal passed.
		fmt.Fprintf(w, "%c\t%s\t%s\t%c\n", unicode.ToUpper(ch), e.PositionString(), last, lamp)
	}
	return w.Flush()
}

func runType(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	var cps float64
	e, rest, err := newMachine("type", args, func(fs *flag.FlagSet) {
		fs.Float64Var(&cps, "cps", 5, "Keystrokes per second.")
	})
	if err != nil {
		return err
	}
	if cps <= 0 {
		return fmt.Errorf("%w: -cps must be positive", errUsage)
	}

	text, err := readText(rest, stdin)
	if err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Limit(cps), 1)
	for _, ch := range text {
		if isLetter(ch) {
			if err := limiter.Wait(ctx); err != nil {
				fmt.Fprintln(stdout)
				return err
			}
		}
		fmt.Fprint(stdout, string(e.EncodeChar(ch)))
	}
	fmt.Fprintln(stdout)
	return nil
}

func runCatalog(stdout io.Writer) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tWIRING\tNOTCH")
	fmt.Fprintln(w, "----\t----\t------\t-----")
	for _, s := range rotor.Default().Specs() {
		notch := "-"
		if s.Notch != rotor.NoNotch {
			notch = string(s.NotchLetter())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Kind, s.Wires, notch)
	}
	return w.Flush()
}

func runKeygen(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := keysheet.Options{}
	fs.IntVar(&opts.Cables, "cables", keysheet.DefaultCables, "Number of plugboard cables (0-13).")
	fs.StringVar(&opts.Reflector, "reflector", "", "Fixed reflector; random when empty.")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	s, err := keysheet.Generate(securerandom.Crypto(), opts)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal key: %w", err)
	}
	_, err = stdout.Write(out)
	return err
}

func isLetter(ch rune) bool {
	up := unicode.ToUpper(ch)
	return up >= 'A' && up <= 'Z'
}
