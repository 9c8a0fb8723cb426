package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLookup_FallsBackToKey(t *testing.T) {
	t.Parallel()
	c := English()
	assert.Equal(t, "Yes", c.Lookup("Yes"))
	assert.Equal(t, "Never Heard Of It", c.Lookup("Never Heard Of It"))
	assert.Equal(t, "en", c.Language())

	var nilCatalog *Catalog
	assert.Equal(t, "Yes", nilCatalog.Lookup("Yes"))
}

func TestLookup_BuiltinGerman(t *testing.T) {
	t.Parallel()
	c, err := New("de-DE")
	require.NoError(t, err)
	assert.Equal(t, "Ja", c.Lookup("Yes"))
	assert.Equal(t, "Beschreibung", c.Lookup("Description"))
	assert.Equal(t, "Unknown Key", c.Lookup("Unknown Key"))
}

func TestNew_FileOverrides(t *testing.T) {
	t.Parallel()
	de := writeFile(t, "de.toml", `
language = "de"

[messages]
Yes = "Jawohl"
"Source File" = "Datei (100%)"
`)
	fr := writeFile(t, "fr.toml", `
language = "fr"

[messages]
Yes = "Oui"
`)
	c, err := New("de", fr, de)
	require.NoError(t, err)
	assert.Equal(t, "Jawohl", c.Lookup("Yes"))
	assert.Equal(t, "Datei (100%)", c.Lookup("Source File"))
	assert.Equal(t, "Nein", c.Lookup("No"))
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	_, err := New("not a language!")
	assert.Error(t, err)

	_, err = New("de", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.toml", "language = \n")
	_, err = New("de", bad)
	assert.Error(t, err)
}
