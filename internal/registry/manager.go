package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oba-ldap/sema/internal/logging"
	"github.com/oba-ldap/sema/internal/schema"
)

// Loader errors
var (
	ErrSchemaFileNotFound = errors.New("registry: schema file not found")
)

// Manager owns one schema view: the bootstrap catalogs built from the
// built-in definitions plus a dynamic comparator and normalizer registry
// layered over them. Managers are independent of each other; create one per
// schema view and discard it when done. There is no teardown protocol.
type Manager struct {
	comparators *ComparatorRegistry
	normalizers *NormalizerRegistry
	log         logging.Logger
}

// NewManager builds the bootstrap catalogs from the built-in matching rule
// definitions and wraps them with fresh dynamic registries.
func NewManager(log logging.Logger) (*Manager, error) {
	if log == nil {
		log = logging.NewNop()
	}

	defs := schema.DefaultMatchingRuleDefinitions()
	cmpEntries := make([]ComparatorEntry, 0, len(defs))
	normEntries := make([]NormalizerEntry, 0, len(defs))
	for _, def := range defs {
		mr, err := schema.ParseMatchingRule(def.Text)
		if err != nil {
			return nil, fmt.Errorf("registry: bad built-in definition %q: %w", def.Text, err)
		}
		cmpEntries = append(cmpEntries, ComparatorEntry{
			Schema:     def.Schema,
			OID:        mr.OID,
			Comparator: schema.ComparatorFor(mr),
		})
		normEntries = append(normEntries, NormalizerEntry{
			Schema:     def.Schema,
			OID:        mr.OID,
			Normalizer: schema.NormalizerFor(mr),
		})
	}

	comparators, err := NewComparatorRegistry(NewComparatorBootstrap(cmpEntries), log)
	if err != nil {
		return nil, err
	}
	normalizers, err := NewNormalizerRegistry(NewNormalizerBootstrap(normEntries), log)
	if err != nil {
		return nil, err
	}

	log.Debug("schema manager initialized", "bootstrap_rules", len(defs))
	return &Manager{
		comparators: comparators,
		normalizers: normalizers,
		log:         log,
	}, nil
}

// Comparators returns the comparator registry.
func (m *Manager) Comparators() *ComparatorRegistry {
	return m.comparators
}

// Normalizers returns the normalizer registry.
func (m *Manager) Normalizers() *NormalizerRegistry {
	return m.normalizers
}

// LoadResult reports the outcome of loading one schema source. Skipped
// holds the per-element failures (typically OID collisions); the caller
// decides whether those are fatal.
type LoadResult struct {
	Schema     string   // schema name the elements were registered under
	Registered []string // OIDs registered by this load
	Skipped    []error  // per-element failures, in source order
}

// LoadFile loads matching rule definitions from an LDIF schema file and
// registers their comparators and normalizers. The schema name is taken
// from the entry's cn attribute, falling back to the file's base name.
func (m *Manager) LoadFile(path string) (*LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSchemaFileNotFound
		}
		return nil, err
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m.LoadLDIF(name, file)
}

// LoadLDIF loads matching rule definitions from an LDIF-formatted reader
// and registers one comparator and one normalizer per rule. A cn attribute
// in the entry overrides schemaName. Malformed definitions and OID
// collisions are collected in the result's Skipped list; registrations that
// already succeeded stay in place.
//
// Example LDIF schema entry:
//
//	dn: cn=schema
//	cn: nis
//	matchingRules: ( 1.3.6.1.1.1.30 NAME 'nisMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
func (m *Manager) LoadLDIF(schemaName string, r io.Reader) (*LoadResult, error) {
	res := &LoadResult{Schema: schemaName}
	var defs []string

	scanner := bufio.NewScanner(r)
	var currentAttr string
	var currentValue strings.Builder

	processValue := func() {
		if currentAttr == "" {
			return
		}
		value := strings.TrimSpace(currentValue.String())
		switch strings.ToLower(currentAttr) {
		case "cn":
			if value != "" {
				res.Schema = value
			}
		case "matchingrules":
			if value != "" {
				defs = append(defs, value)
			}
		}
		currentAttr = ""
		currentValue.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			processValue()
			continue
		}

		// Handle line continuation (line starting with space)
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			currentValue.WriteString(" ")
			currentValue.WriteString(strings.TrimLeft(line, " \t"))
			continue
		}

		// Process previous attribute before starting new one
		processValue()

		colonIdx := strings.Index(line, ":")
		if colonIdx == -1 {
			continue
		}

		currentAttr = strings.TrimSpace(line[:colonIdx])
		currentValue.WriteString(strings.TrimSpace(line[colonIdx+1:]))
	}
	processValue()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, def := range defs {
		oid, err := m.registerRule(res.Schema, def)
		if err != nil {
			res.Skipped = append(res.Skipped, err)
			continue
		}
		res.Registered = append(res.Registered, oid)
	}

	m.log.Info("schema loaded",
		"schema", res.Schema,
		"registered", len(res.Registered),
		"skipped", len(res.Skipped))
	return res, nil
}

// registerRule parses one matching rule definition and registers its
// comparator and normalizer under the given schema name.
func (m *Manager) registerRule(schemaName, def string) (string, error) {
	mr, err := schema.ParseMatchingRule(def)
	if err != nil {
		return "", fmt.Errorf("registry: parsing %q: %w", def, err)
	}

	if err := m.comparators.Register(schemaName, mr.OID, schema.ComparatorFor(mr)); err != nil {
		return "", err
	}
	if err := m.normalizers.Register(schemaName, mr.OID, schema.NormalizerFor(mr)); err != nil {
		// The layers are registered pairwise; a normalizer collision with a
		// fresh comparator registration means the two registries disagree.
		return "", err
	}
	return mr.OID, nil
}

// SchemaNames returns the distinct schema names that have contributed at
// least one comparator, sorted.
func (m *Manager) SchemaNames() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, oid := range m.comparators.OIDs() {
		name, err := m.comparators.SchemaName(oid)
		if err != nil {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
