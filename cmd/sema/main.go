// Package main provides the entry point for the sema schema tooling CLI.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	exitCode := run(os.Args)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stdout)
		return 1
	}

	switch args[1] {
	case "schema":
		return schemaCmd(args[2:])
	case "lookup":
		return lookupCmd(args[2:])
	case "check":
		return checkCmd(args[2:])
	case "version":
		return versionCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[1])
		fmt.Fprintln(os.Stderr, "Run 'sema help' for usage.")
		return 1
	}
}

// printUsage prints the top-level usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sema <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  schema    Load schema files and list registered elements")
	fmt.Fprintln(w, "  lookup    Resolve one OID and report its provenance")
	fmt.Fprintln(w, "  check     Validate a value against a syntax OID")
	fmt.Fprintln(w, "  version   Show version information")
	fmt.Fprintln(w, "  help      Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sema <command> -help' for command options.")
}
