// Command pathquery is the script front-end over the query-evaluation
// engine: it dispatches the `stats`, `measure`, `check`, `dot`,
// `ll-table`, and `ll` commands, each a thin adapter onto a library
// package's exported entry point.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

// run dispatches the command named by os.Args[1] and returns the process
// exit code: 0 on success, 1 on any fatal error. A panic inside any
// command handler is recovered here into a clean non-zero exit rather
// than a raw stack trace: panics are reserved for programmer errors in
// private helpers, never for user-facing failures, and the CLI is where
// that boundary terminates.
func run() (code int) {
	configureLogging()

	// --log-level=… is consumed by configureLogging, not passed on to commands.
	filtered := os.Args[:1]
	for _, a := range os.Args[1:] {
		if !strings.HasPrefix(a, "--log-level=") {
			filtered = append(filtered, a)
		}
	}
	os.Args = filtered

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("fatal: unrecoverable internal error")
			code = 1
		}
	}()

	if len(os.Args) < 2 {
		usage()
		return 1
	}

	var err error
	switch os.Args[1] {
	case "stats":
		err = cmdStats(os.Args[2:])
	case "measure":
		err = cmdMeasure(os.Args[2:])
	case "check":
		err = cmdCheck(os.Args[2:])
	case "dot":
		err = cmdDot(os.Args[2:])
	case "ll-table":
		err = cmdLLTable(os.Args[2:])
	case "ll":
		err = cmdLL(os.Args[2:])
	default:
		usage()
		return 1
	}

	if err != nil {
		log.Error().Err(err).Str("command", os.Args[1]).Msg("fatal")
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: pathquery <command> [args...]

commands:
  stats GRAPH-PATH REGEX-PATH
  measure DIR CSV ITERATIONS
  check PATH
  dot PATH
  ll-table PATH [--format=yaml]
  ll TABLE-PATH INPUT-PATH`)
}

// configureLogging reads --log-level (if present among the raw args) or
// PATHQUERY_LOG_LEVEL, defaulting to info.
func configureLogging() {
	level := os.Getenv("PATHQUERY_LOG_LEVEL")
	for _, a := range os.Args[1:] {
		if v, ok := strings.CutPrefix(a, "--log-level="); ok {
			level = v
		}
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
