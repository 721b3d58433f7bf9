package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Flow:
// 	prompt -> read line -> ""		-> report
// 	                    -> number	-> add, prompt again
// 	                    -> junk		-> fail, no report

func main() {
	if err := mainFunc(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fail(os.Stderr, err)
		os.Exit(1)
	}
}

func fail(w io.Writer, err error) {
	fmt.Fprintf(w, "Failed: %v\n", err)
}

func mainFunc(args []string, in io.Reader, out io.Writer) error {
	flags := pflag.NewFlagSet("avg", pflag.ContinueOnError)
	logFile := flags.StringP("log", "l", "", "Write debug log to this file")
	if err := flags.Parse(args); err != nil {
		return xerrors.Errorf("flags: %w", err)
	}

	logger, err := newLogger(*logFile)
	if err != nil {
		return xerrors.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sl := logger.Sugar()

	m, err := Run(in, out, sl)
	if err != nil {
		return xerrors.Errorf("input: %w", err)
	}
	if err := Report(out, m); err != nil {
		return xerrors.Errorf("report: %w", err)
	}
	sl.Infof("Reported %d numbers, sum %d", m.Count, m.Sum)
	return nil
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	logcfg := zap.NewDevelopmentConfig()
	logcfg.OutputPaths = []string{path}
	return logcfg.Build()
}
