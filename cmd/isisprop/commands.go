package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"isis-core/convert"
	"isis-core/internal/common"
	"isis-core/internal/config"
	"isis-core/internal/diagnostic"
	"isis-core/internal/propfile"
	"isis-core/kind"
)

var errDiagnostics = errors.New("some properties could not be processed")

type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// load reads all files concurrently, results keep the order of paths.
func (a *app) load(ctx context.Context, paths []string) ([]*propfile.File, error) {
	files := make([]*propfile.File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Processing.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := propfile.LoadFile(path)
			if err != nil {
				return err
			}

			files[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

func (a *app) dump(args []string) error {
	if common.IsEmpty(args) {
		return fmt.Errorf("%w: dump needs at least one file", errUsage)
	}

	files, err := a.load(context.Background(), args)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics
	for i, f := range files {
		if len(files) > 1 {
			fmt.Fprintf(a.stdout, "# %s\n", args[i])
		}

		if text := f.Props.ToString(a.cfg.Output.Labeled); text != "" {
			fmt.Fprintln(a.stdout, text)
		}

		diags.Merge(f.Diagnostics)
	}

	return a.report(diags)
}

func (a *app) get(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: get needs FILE PATH [KIND]", errUsage)
	}

	files, err := a.load(context.Background(), args[:1])
	if err != nil {
		return err
	}

	f := files[0]
	path := args[1]

	p, ok := f.Props.Lookup(path)
	if !ok {
		return &convert.MissingPropertyError{Path: path, Suggestions: f.Props.Suggest(path, 3)}
	}

	if p.IsEmpty() {
		return fmt.Errorf("%w: %s", convert.ErrEmptyProperty, path)
	}

	v := p.Value()

	if len(args) == 3 {
		k, err := parseKind(args[2])
		if err != nil {
			return err
		}

		if v, err = convert.Default().Generate(v, k); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.stdout, v.ToString(a.cfg.Output.Labeled))

	return nil
}

func (a *app) convert(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: convert needs FILE PATH=KIND...", errUsage)
	}

	targets := map[string]kind.KindEnum{}
	for _, arg := range args[1:] {
		path, name, ok := strings.Cut(arg, "=")
		if !ok || path == "" {
			return fmt.Errorf("%w: %q is not PATH=KIND", errUsage, arg)
		}

		k, err := parseKind(name)
		if err != nil {
			return err
		}

		targets[path] = k
	}

	files, err := a.load(context.Background(), args[:1])
	if err != nil {
		return err
	}

	f := files[0]
	diags := f.Diagnostics
	diags.Merge(convert.Default().TransformAll(f.Props, targets))

	data, err := propfile.Marshal(f.Props)
	if err != nil {
		return err
	}

	if _, err := a.stdout.Write(data); err != nil {
		return err
	}

	return a.report(diags)
}

func (a *app) matrix(args []string) error {
	if !common.IsEmpty(args) {
		return fmt.Errorf("%w: matrix takes no arguments", errUsage)
	}

	return convert.Default().WriteMatrix(a.stdout)
}

// report prints warnings and errors, infos only in labeled output.
func (a *app) report(diags diagnostic.Diagnostics) error {
	for _, d := range diags.Errors {
		fmt.Fprintln(a.stderr, "error:", d)
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(a.stderr, "warning:", d)
	}

	if a.cfg.Output.Labeled {
		for _, d := range diags.Infos {
			fmt.Fprintln(a.stderr, "info:", d)
		}
	}

	if diags.HasErrors() {
		first, _ := common.First(diags.Errors)
		return fmt.Errorf("%w (first: %s)", errDiagnostics, first.FieldPath)
	}

	return nil
}

func parseKind(name string) (kind.KindEnum, error) {
	k, ok := kind.FromName(name)
	if !ok {
		names := make([]string, 0, len(kind.All()))
		for _, k := range kind.All() {
			names = append(names, k.TypeName())
		}

		return 0, fmt.Errorf("%w: unknown kind %q, expected one of %s", errUsage, name, strings.Join(names, ", "))
	}

	return k, nil
}
