// Package main provides CLI commands for the sema schema tooling.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oba-ldap/sema/internal/config"
	"github.com/oba-ldap/sema/internal/logging"
	"github.com/oba-ldap/sema/internal/registry"
	"github.com/oba-ldap/sema/internal/schema"
)

// newManager builds a schema manager from an optional config file, loading
// any configured schema files on top of the bootstrap set.
func newManager(configFile string, extraFiles []string) (*registry.Manager, int) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, 1
		}
		if errs := config.ValidateConfig(loaded); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", e)
			}
			return nil, 1
		}
		cfg = loaded
	}

	log := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}).WithRequestID(logging.GenerateRequestID())

	mgr, err := registry.NewManager(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, 1
	}

	files := append(append([]string{}, cfg.Schema.Files...), extraFiles...)
	for _, file := range files {
		res, err := mgr.LoadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading %s: %v\n", file, err)
			return nil, 1
		}
		for _, skipped := range res.Skipped {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", file, skipped)
			if cfg.Schema.StrictLoad {
				return nil, 1
			}
		}
	}

	return mgr, 0
}

// schemaCmd handles the schema command: load schema files and list every
// registered comparator OID with its provenance.
func schemaCmd(args []string) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	configFile := fs.String("config", "", "Config file path")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printSchemaUsage(os.Stdout)
		return 0
	}

	mgr, code := newManager(*configFile, fs.Args())
	if mgr == nil {
		return code
	}

	for _, oid := range mgr.Comparators().OIDs() {
		name, err := mgr.Comparators().SchemaName(oid)
		if err != nil {
			name = "?"
		}
		cmp, err := mgr.Comparators().Lookup(oid)
		if err != nil {
			continue
		}
		fmt.Printf("%-28s %-12s %s\n", oid, name, cmp.Name)
	}
	return 0
}

// lookupCmd handles the lookup command: resolve one OID against the
// comparator registry and report the rule and contributing schema.
func lookupCmd(args []string) int {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	configFile := fs.String("config", "", "Config file path")
	oid := fs.String("oid", "", "Numeric OID to resolve")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printLookupUsage(os.Stdout)
		return 0
	}

	if *oid == "" {
		fmt.Fprintln(os.Stderr, "Error: -oid is required")
		return 1
	}

	mgr, code := newManager(*configFile, fs.Args())
	if mgr == nil {
		return code
	}

	cmp, err := mgr.Comparators().Lookup(*oid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	name, err := mgr.Comparators().SchemaName(*oid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("OID:    %s\n", *oid)
	fmt.Printf("Rule:   %s\n", cmp.Name)
	fmt.Printf("Schema: %s\n", name)
	return 0
}

// checkCmd handles the check command: validate a value against a syntax.
func checkCmd(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	syntaxOID := fs.String("syntax", "", "Syntax OID to validate against")
	value := fs.String("value", "", "Value to validate")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printCheckUsage(os.Stdout)
		return 0
	}

	if *syntaxOID == "" {
		fmt.Fprintln(os.Stderr, "Error: -syntax is required")
		return 1
	}

	syn := schema.SyntaxFor(*syntaxOID)
	if syn == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown syntax OID %q\n", *syntaxOID)
		return 1
	}

	if !syn.Validate([]byte(*value)) {
		fmt.Printf("INVALID %s value\n", syn.Description)
		return 1
	}
	fmt.Printf("valid %s value\n", syn.Description)
	return 0
}

// printSchemaUsage prints usage for the schema command.
func printSchemaUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sema schema [options] [schema.ldif ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Loads the given LDIF schema files on top of the bootstrap set and")
	fmt.Fprintln(w, "lists every registered comparator OID with its contributing schema.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -config string   Config file path")
}

// printLookupUsage prints usage for the lookup command.
func printLookupUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sema lookup -oid OID [options] [schema.ldif ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolves one OID against the comparator registry and reports the")
	fmt.Fprintln(w, "matching rule and the schema that contributed it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -config string   Config file path")
	fmt.Fprintln(w, "  -oid string      Numeric OID to resolve")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sema check -syntax OID -value VALUE")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validates a value against a built-in syntax definition.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -syntax string   Syntax OID to validate against")
	fmt.Fprintln(w, "  -value string    Value to validate")
}
