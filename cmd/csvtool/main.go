package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/darianmavgo/csvtool/config"
	"github.com/darianmavgo/csvtool/inputs"
	_ "github.com/darianmavgo/csvtool/inputs/all"
	"github.com/darianmavgo/csvtool/render"
	"github.com/darianmavgo/csvtool/sqlite"
	"github.com/darianmavgo/csvtool/table"
	"github.com/darianmavgo/csvtool/transform"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  csvtool                                            # Readable grid of piped stdin")
	fmt.Fprintln(w, "  csvtool readable [FILE|-]                          # Readable grid")
	fmt.Fprintln(w, "  csvtool select -c SPEC [FILE|-]                    # Project columns, CSV to stdout")
	fmt.Fprintln(w, "  csvtool search -c SPEC -s PATTERN [FILE|-]         # Keep rows matching regex")
	fmt.Fprintln(w, "  csvtool replace -c SPEC -o OLD -n NEW [FILE|-]     # Swap exact cell values")
	fmt.Fprintln(w, "  csvtool sqlite [FILE|-] [OUT.db]                   # Export to SQLite database")
	fmt.Fprintln(w, "Global flags: --no-header, --delimiter|-d CHAR, --config PATH")
}

type globalFlags struct {
	noHeader  bool
	delimiter string
	confPath  string
}

// splitGlobalFlags filters the global flags out of args, returning the
// remaining command words in order.
func splitGlobalFlags(args []string) (globalFlags, []string, error) {
	var gf globalFlags
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--no-header":
			gf.noHeader = true
		case arg == "--delimiter" || arg == "-d":
			i++
			if i >= len(args) {
				return gf, nil, fmt.Errorf("%s requires a value", arg)
			}
			gf.delimiter = args[i]
		case strings.HasPrefix(arg, "--delimiter="):
			gf.delimiter = strings.TrimPrefix(arg, "--delimiter=")
		case arg == "--config":
			i++
			if i >= len(args) {
				return gf, nil, fmt.Errorf("--config requires a value")
			}
			gf.confPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			gf.confPath = strings.TrimPrefix(arg, "--config=")
		default:
			rest = append(rest, arg)
		}
	}
	return gf, rest, nil
}

// parseCommandArgs pulls flag values out of a subcommand's arguments.
// wanted maps every accepted flag spelling to its destination; the one
// remaining positional argument is the input file. The returned set
// records which destinations were assigned, so callers can tell an
// explicit empty value from an absent flag.
func parseCommandArgs(args []string, wanted map[string]*string) (string, map[*string]bool, error) {
	file := "-"
	seenFile := false
	seen := make(map[*string]bool)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if dst, ok := wanted[arg]; ok {
			i++
			if i >= len(args) {
				return "", nil, fmt.Errorf("%s requires a value", arg)
			}
			*dst = args[i]
			seen[dst] = true
			continue
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			return "", nil, fmt.Errorf("unknown flag %q", arg)
		}
		if seenFile {
			return "", nil, fmt.Errorf("unexpected argument %q", arg)
		}
		file = arg
		seenFile = true
	}
	return file, seen, nil
}

func stdinPiped(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadTable reads one input source fully into a Table. "-" or an empty
// path means stdin, which is always treated as delimited text; file
// paths pick their driver by extension.
func loadTable(path string, stdin *os.File, opts inputs.Options) (*table.Table, error) {
	if path == "" || path == "-" {
		return inputs.Open("csv", stdin, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return inputs.Open(inputs.DriverForPath(path), f, opts)
}

func run(args []string, stdin *os.File, stdout io.Writer) error {
	gf, rest, err := splitGlobalFlags(args)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if gf.confPath != "" {
		if cfg, err = config.Load(gf.confPath); err != nil {
			return err
		}
	}

	delimSpec := cfg.Delimiter
	if gf.delimiter != "" {
		delimSpec = gf.delimiter
	}
	opts := inputs.Options{NoHeader: gf.noHeader}
	switch {
	case delimSpec == "auto":
		opts.DetectDelimiter = true
	case len(delimSpec) == 1:
		opts.Delimiter = delimSpec[0]
	default:
		return fmt.Errorf("delimiter must be a single character or \"auto\", got %q", delimSpec)
	}

	writeOpts := table.WriteOptions{
		Delimiter:              opts.Delimiter,
		OmitTrailingTerminator: !cfg.TrailingTerminator,
	}

	// Default behavior: readable grid of piped stdin, usage otherwise.
	if len(rest) == 0 {
		if !stdinPiped(stdin) {
			usage(stdout)
			return nil
		}
		t, err := loadTable("-", stdin, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, render.Grid(t))
		return err
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "readable":
		file, _, err := parseCommandArgs(cmdArgs, nil)
		if err != nil {
			return err
		}
		t, err := loadTable(file, stdin, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, render.Grid(t))
		return err

	case "select":
		var spec string
		file, _, err := parseCommandArgs(cmdArgs, map[string]*string{"-c": &spec, "--columns": &spec})
		if err != nil {
			return err
		}
		if spec == "" {
			return fmt.Errorf("select requires -c SPEC")
		}
		t, err := loadTable(file, stdin, opts)
		if err != nil {
			return err
		}
		cols, err := t.Resolve([]string{spec})
		if err != nil {
			return err
		}
		return table.Write(stdout, transform.Select(t, cols), writeOpts)

	case "search":
		var spec, pattern string
		file, _, err := parseCommandArgs(cmdArgs, map[string]*string{
			"-c": &spec, "--column": &spec,
			"-s": &pattern, "--search": &pattern,
		})
		if err != nil {
			return err
		}
		if spec == "" || pattern == "" {
			return fmt.Errorf("search requires -c SPEC and -s PATTERN")
		}
		t, err := loadTable(file, stdin, opts)
		if err != nil {
			return err
		}
		col, err := singleColumn(t, spec, "search")
		if err != nil {
			return err
		}
		out, err := transform.Search(t, col, pattern)
		if err != nil {
			return err
		}
		return table.Write(stdout, out, writeOpts)

	case "replace":
		var spec, oldVal, newVal string
		file, seen, err := parseCommandArgs(cmdArgs, map[string]*string{
			"-c": &spec, "--column": &spec,
			"-o": &oldVal, "--old": &oldVal,
			"-n": &newVal, "--new": &newVal,
		})
		if err != nil {
			return err
		}
		if spec == "" || !seen[&oldVal] || !seen[&newVal] {
			return fmt.Errorf("replace requires -c SPEC, -o OLD and -n NEW")
		}
		t, err := loadTable(file, stdin, opts)
		if err != nil {
			return err
		}
		col, err := singleColumn(t, spec, "replace")
		if err != nil {
			return err
		}
		return table.Write(stdout, transform.Replace(t, col, oldVal, newVal), writeOpts)

	case "sqlite":
		file, out, err := sqliteArgs(cmdArgs)
		if err != nil {
			return err
		}
		t, err := loadTable(file, stdin, opts)
		if err != nil {
			return err
		}
		if err := sqlite.Export(t, out, sqlite.ExportOptions{BatchSize: cfg.BatchSize}); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Successfully exported %s to %s\n", file, out)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// singleColumn resolves a spec that must address exactly one column.
func singleColumn(t *table.Table, spec, cmd string) (int, error) {
	cols, err := t.Resolve([]string{spec})
	if err != nil {
		return 0, err
	}
	if len(cols) != 1 {
		return 0, fmt.Errorf("%s expects a single column, got %d", cmd, len(cols))
	}
	return cols[0], nil
}

func sqliteArgs(args []string) (file, out string, err error) {
	file = "-"
	var positionals []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && arg != "-" {
			return "", "", fmt.Errorf("unknown flag %q", arg)
		}
		positionals = append(positionals, arg)
	}
	switch len(positionals) {
	case 0:
	case 1:
		file = positionals[0]
	case 2:
		file, out = positionals[0], positionals[1]
	default:
		return "", "", fmt.Errorf("unexpected argument %q", positionals[2])
	}
	if out == "" {
		if file == "-" {
			return "", "", fmt.Errorf("sqlite requires an output path when reading stdin")
		}
		out = file + ".db"
	}
	return file, out, nil
}

func main() {
	// Without this the runtime keeps SIGPIPE's default disposition for
	// stdout and the process dies with 141 instead of seeing EPIPE.
	signal.Ignore(syscall.SIGPIPE)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		// A downstream consumer going away (head, etc) is routine in
		// shell pipelines, not a fault worth reporting.
		if errors.Is(err, syscall.EPIPE) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "csvtool: %v\n", err)
		os.Exit(1)
	}
}
