// Package main provides the synth-schema CLI.
//
// synth-schema loads a Go package, evaluates a type expression in its
// scope and prints the schema graph of the type:
//
//	synth-schema -pkg object-synth/fixtures -type 'Nested[string, int]' -format yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"object-synth/internal/analyze"
	"object-synth/schema"
	"object-synth/settings"
	"object-synth/typedesc"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "synth-schema:", err)
		}
		os.Exit(2)
	}
}

type options struct {
	pkg      string
	typ      string
	format   string
	maxDepth int
	settings string
	out      string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("synth-schema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.pkg, "pkg", "", "import path of the package declaring the type")
	fs.StringVar(&o.typ, "type", "", "type expression, e.g. 'Pair[string, int]'")
	fs.StringVar(&o.format, "format", "json", "output format: json, yaml or msgpack")
	fs.IntVar(&o.maxDepth, "max-depth", -1, "depth limit (<= 0 disables it); overrides the settings file")
	fs.StringVar(&o.settings, "settings", "", "YAML settings file (max_depth, leaf_types)")
	fs.StringVar(&o.out, "o", "", "output file (default stdout)")
	fs.BoolVar(&o.verbose, "v", false, "log graph construction to stderr")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.pkg == "" || o.typ == "" {
		fs.Usage()
		return o, errors.New("-pkg and -type are required")
	}

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	marshal, err := marshaler(o.format)
	if err != nil {
		return err
	}

	s := settings.Defaults()
	if o.settings != "" {
		if s, err = settings.LoadFile(o.settings); err != nil {
			return err
		}
	}

	if o.maxDepth >= 0 {
		s = s.WithMaxDepth(o.maxDepth)
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	l := analyze.NewLoader()
	if _, err := l.LoadPackages(o.pkg); err != nil {
		return err
	}

	typ, err := l.Eval(o.pkg, o.typ)
	if err != nil {
		return err
	}

	root, err := schema.NewFactory(
		schema.WithContext(l.Context()),
		schema.WithMaxDepth(s.MaxDepth),
		schema.WithClassifier(typedesc.NewClassifier(s.LeafTypes...)),
		schema.WithLogger(logger),
	).Build(typ)
	if err != nil {
		return err
	}

	data, err := marshal(root)
	if err != nil {
		return fmt.Errorf("failed to render schema: %w", err)
	}

	if o.out == "" {
		_, err = stdout.Write(data)
		return err
	}

	if err := os.WriteFile(o.out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", o.out, err)
	}

	logger.Info("schema written", "file", o.out, "type", root.Key())

	return nil
}

func marshaler(format string) (func(*schema.Node) ([]byte, error), error) {
	switch format {
	case "json":
		return schema.MarshalJSON, nil
	case "yaml":
		return schema.MarshalYAML, nil
	case "msgpack":
		return schema.MarshalMsgpack, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
