package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager(nil)
	require.NoError(t, err)
	return mgr
}

func TestNewManagerBootstrapsDefaults(t *testing.T) {
	mgr := newTestManager(t)

	// The standard rules resolve out of the box, from the bootstrap layer.
	cmp, err := mgr.Comparators().Lookup("2.5.13.2")
	require.NoError(t, err)
	assert.Equal(t, "caseIgnoreMatch", cmp.Name)

	norm, err := mgr.Normalizers().Lookup("2.5.13.2")
	require.NoError(t, err)
	out, err := norm.Normalize([]byte("  Foo   Bar "))
	require.NoError(t, err)
	assert.Equal(t, "foo bar", string(out))

	name, err := mgr.Comparators().SchemaName("2.5.13.20")
	require.NoError(t, err)
	assert.Equal(t, "core", name)

	assert.Equal(t, []string{"core", "cosine", "system"}, mgr.SchemaNames())
}

const nisLDIF = `# partial nis schema
dn: cn=schema
cn: nis
matchingRules: ( 1.3.6.1.1.1.30 NAME 'nisNetgroupTripleMatch'
  SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
matchingRules: ( 1.3.6.1.1.1.31 NAME 'bootParameterMatch'
  SYNTAX 1.3.6.1.4.1.1466.115.121.1.26 )
`

func TestLoadLDIF(t *testing.T) {
	mgr := newTestManager(t)

	res, err := mgr.LoadLDIF("fallback", strings.NewReader(nisLDIF))
	require.NoError(t, err)

	// The cn attribute wins over the fallback name.
	assert.Equal(t, "nis", res.Schema)
	assert.Equal(t, []string{"1.3.6.1.1.1.30", "1.3.6.1.1.1.31"}, res.Registered)
	assert.Empty(t, res.Skipped)

	for _, oid := range res.Registered {
		assert.True(t, mgr.Comparators().Has(oid))
		assert.True(t, mgr.Normalizers().Has(oid))
		name, err := mgr.Comparators().SchemaName(oid)
		require.NoError(t, err)
		assert.Equal(t, "nis", name)
	}

	assert.Contains(t, mgr.SchemaNames(), "nis")
}

func TestLoadLDIFSkipsCollisions(t *testing.T) {
	mgr := newTestManager(t)

	ldif := `dn: cn=schema
cn: clash
matchingRules: ( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
matchingRules: ( 1.3.6.1.1.1.30 NAME 'nisNetgroupTripleMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
`
	res, err := mgr.LoadLDIF("clash", strings.NewReader(ldif))
	require.NoError(t, err)

	// The bootstrap collision is skipped, the fresh OID still lands.
	require.Len(t, res.Skipped, 1)
	assert.ErrorIs(t, res.Skipped[0], ErrAlreadyRegistered)
	assert.Equal(t, []string{"1.3.6.1.1.1.30"}, res.Registered)

	// And the bootstrap element is untouched.
	name, err := mgr.Comparators().SchemaName("2.5.13.2")
	require.NoError(t, err)
	assert.Equal(t, "system", name)
}

func TestLoadLDIFSkipsMalformedDefinitions(t *testing.T) {
	mgr := newTestManager(t)

	ldif := `dn: cn=schema
cn: broken
matchingRules: not a definition
matchingRules: ( 1.3.6.1.1.1.30 NAME 'nisNetgroupTripleMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
`
	res, err := mgr.LoadLDIF("broken", strings.NewReader(ldif))
	require.NoError(t, err)
	assert.Len(t, res.Skipped, 1)
	assert.Equal(t, []string{"1.3.6.1.1.1.30"}, res.Registered)
}

func TestLoadFile(t *testing.T) {
	mgr := newTestManager(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "nis.ldif")
	content := `dn: cn=schema
matchingRules: ( 1.3.6.1.1.1.30 NAME 'nisNetgroupTripleMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := mgr.LoadFile(path)
	require.NoError(t, err)

	// No cn attribute, so the file base name is the schema name.
	assert.Equal(t, "nis", res.Schema)
	assert.Equal(t, []string{"1.3.6.1.1.1.30"}, res.Registered)
}

func TestLoadFileNotFound(t *testing.T) {
	mgr := newTestManager(t)

	_, err := mgr.LoadFile(filepath.Join(t.TempDir(), "missing.ldif"))
	assert.ErrorIs(t, err, ErrSchemaFileNotFound)
}

func TestManagersAreIndependent(t *testing.T) {
	first := newTestManager(t)
	second := newTestManager(t)

	_, err := first.LoadLDIF("nis", strings.NewReader(nisLDIF))
	require.NoError(t, err)

	assert.True(t, first.Comparators().Has("1.3.6.1.1.1.30"))
	assert.False(t, second.Comparators().Has("1.3.6.1.1.1.30"))
}
