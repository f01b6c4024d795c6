package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()
	err := run(context.Background(), os.Args[1:], env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	os.Exit(exitCodeFor(err))
}

// run dispatches to a command. The first argument selects the command;
// anything else is handed to the command's own flag parsing.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return errUsage
	}

	switch args[0] {
	case "convert":
		return runConvert(ctx, args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2pptx %s\n", Version)
		return nil
	case "help":
		runHelp(args[1:], env)
		return nil
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return errUsage
	}
}
