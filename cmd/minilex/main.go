// Command minilex lexes toy-language source text and prints the lexical
// errors followed by a tokenization table.
//
// Without arguments it runs the built-in demo inputs. With file arguments it
// lexes each file; "-" reads from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"github.com/pacer/minilex/internal/lang/display"
	"github.com/pacer/minilex/internal/lang/scanner"
)

// version is set by goreleaser at build time.
var version = "dev"

// demoInputs are the fixed sample snippets lexed when no file argument is
// given. They are deliberately not configurable at runtime.
var demoInputs = []string{
	"inventory = 50",
	"inventory = inventory - 1))",
	`print("Remaining Inventory: " + inventory)`,
	"inventory -= 1",
	"if inventory <= 0:\n\tprint(\"sold out\")",
	"price = $99",
}

func main() {
	versionFlag := flag.Bool("version", false, "print the minilex version")
	verboseFlag := flag.Bool("verbose", false, "enable debug logging")
	logFileFlag := flag.String("log-file", "", "also write logs as JSON to this file")
	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	logger, closeLog, err := buildLogger(*verboseFlag, *logFileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minilex: open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if flag.NArg() == 0 {
		runDemo(os.Stdout, logger)
		return
	}

	for _, path := range flag.Args() {
		if err := lexSource(os.Stdout, logger, path); err != nil {
			logger.Error("lex source", "path", path, "error", err)
			os.Exit(1)
		}
	}
}

// buildLogger fans records out to a stderr text handler and, when requested,
// a JSON log file. The returned close function releases the log file.
func buildLogger(verbose bool, logFilePath string) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var handlers []slog.Handler
	handlers = append(handlers, slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: level},
	))

	closeLog := func() {}

	if logFilePath != "" {
		file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, err
		}

		handlers = append(handlers, slog.NewJSONHandler(
			file,
			&slog.HandlerOptions{Level: slog.LevelDebug},
		))
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeLog, nil
}

// runDemo lexes every built-in sample, mirroring the classic demo output:
// the input line, the error list or no-error notice, then the table.
func runDemo(w io.Writer, logger *slog.Logger) {
	for _, input := range demoInputs {
		fmt.Fprintf(w, "INPUT: %s\n", input)
		report(w, logger, []byte(input))
		fmt.Fprintln(w)
	}
}

// lexSource lexes one file argument, with "-" standing for stdin.
func lexSource(w io.Writer, logger *slog.Logger, path string) error {
	var content []byte
	var err error

	if path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}

	if err != nil {
		return err
	}

	report(w, logger, content)

	return nil
}

func report(w io.Writer, logger *slog.Logger, content []byte) {
	tokens, errs := scanner.Tokenize(content)

	logger.Debug(
		"tokenize",
		"bytes", len(content),
		"tokens", len(tokens),
		"errors", len(errs),
	)

	display.WriteErrors(w, errs)
	display.WriteTable(w, tokens)
}
