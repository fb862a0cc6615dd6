package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leengari/colstore/internal/catalog"
	"github.com/leengari/colstore/internal/config"
	"github.com/leengari/colstore/internal/engine"
	"github.com/leengari/colstore/internal/logging"
)

type options struct {
	cfg     config.Config
	db      string
	table   string
	columns []string
	rows    string
	format  string
}

func parseFlags(args []string) (options, error) {
	opts := options{cfg: config.Default()}

	fs := flag.NewFlagSet("colstore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts.cfg.RegisterFlags(fs)
	fs.StringVar(&opts.db, "db", "", "Database name")
	fs.StringVar(&opts.table, "table", "", "Table name")
	columns := fs.String("columns", "", "Comma separated column names")
	fs.StringVar(&opts.rows, "rows", "", "CSV file of integer rows ('-' for stdin, empty for none)")
	fs.StringVar(&opts.format, "format", "json", "Output format (json, bson)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if err := opts.cfg.Validate(); err != nil {
		return opts, err
	}
	if opts.db == "" || opts.table == "" || *columns == "" {
		return opts, errors.New("-db, -table and -columns are required")
	}
	for _, c := range strings.Split(*columns, ",") {
		opts.columns = append(opts.columns, strings.TrimSpace(c))
	}
	opts.format = strings.ToLower(opts.format)
	if opts.format != "json" && opts.format != "bson" {
		return opts, fmt.Errorf("invalid format: %q (must be 'json' or 'bson')", opts.format)
	}
	return opts, nil
}

// run builds the table described by opts, loads its rows and writes the
// catalog description to stdout.
func run(opts options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	cat, err := catalog.New(opts.cfg.Limits, logger)
	if err != nil {
		return err
	}
	eng := engine.New(cat)
	eng.AddObserver(engine.NewLoggingObserver(logger))

	if err := eng.CreateDB(opts.db); err != nil {
		return err
	}
	h, err := eng.CreateTable(opts.table, len(opts.columns))
	if err != nil {
		return err
	}
	for _, name := range opts.columns {
		if _, err := eng.CreateColumn(h, name); err != nil {
			return err
		}
	}

	if opts.rows != "" {
		src := stdin
		if opts.rows != "-" {
			f, err := os.Open(opts.rows)
			if err != nil {
				return fmt.Errorf("failed to open rows file: %w", err)
			}
			defer f.Close()
			src = f
		}
		n, err := loadRows(src, len(opts.columns), func(values []int32) error {
			return eng.RelationalInsert(h, values)
		})
		if err != nil {
			return err
		}
		logger.Info("rows loaded", "table", opts.table, "rows", n)
	}

	d, err := cat.Describe()
	if err != nil {
		return err
	}
	var out []byte
	if opts.format == "bson" {
		out, err = d.BSON()
	} else {
		out, err = d.JSON()
		out = append(out, '\n')
	}
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "colstore:", err)
		os.Exit(2)
	}

	logger, closeFn, err := logging.SetupLogger(opts.cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "colstore:", err)
		os.Exit(2)
	}
	defer closeFn()
	slog.SetDefault(logger)

	if err := run(opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("colstore failed", "error", err)
		closeFn()
		os.Exit(1)
	}
}
