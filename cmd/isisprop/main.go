// Package main provides the CLI entrypoint for isisprop.
//
// isisprop inspects and converts property files:
//   - dump: load property files concurrently and print every property
//   - get: print one property, optionally converted to another kind
//   - convert: re-type properties and print the resulting file
//   - matrix: print the conversion strategy of every pair of kinds
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"isis-core/corelog"
	"isis-core/internal/config"
)

var errUsage = errors.New("usage")

const usage = `usage: isisprop [-config file] <command> [arguments]

commands:
  dump FILE...              print every property of the files
  get FILE PATH [KIND]      print one property, converted to KIND if given
  convert FILE PATH=KIND... re-type properties and print the result as YAML
  matrix                    print the conversion strategy of every kind pair
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("isisprop", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	configPath := fs.String("config", "", "YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	corelog.SetLogger(logger)
	defer corelog.SetLogger(nil)

	app := &app{cfg: cfg, stdout: stdout, stderr: stderr}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	var cmdErr error

	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "dump":
		cmdErr = app.dump(cmdArgs)
	case "get":
		cmdErr = app.get(cmdArgs)
	case "convert":
		cmdErr = app.convert(cmdArgs)
	case "matrix":
		cmdErr = app.matrix(cmdArgs)
	default:
		cmdErr = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	switch {
	case cmdErr == nil:
		return 0
	case errors.Is(cmdErr, errUsage):
		fmt.Fprintln(stderr, cmdErr)
		fs.Usage()

		return 2
	default:
		fmt.Fprintln(stderr, "isisprop:", cmdErr)
		return 1
	}
}
