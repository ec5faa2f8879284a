package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enYAML = `
exercises:
  title: Exercise Library
  empty: Nothing here yet.
  blank: "   "
site:
  name: Spine Center
  founded: 1998
`

const esYAML = `
exercises:
  title: Biblioteca de ejercicios
`

func writeLocales(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(enYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es.yml"), []byte(esYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))
	return dir
}

func TestParse_Flattens(t *testing.T) {
	table, err := Parse([]byte(enYAML))
	require.NoError(t, err)
	assert.Equal(t, "Exercise Library", table["exercises.title"])
	assert.Equal(t, "1998", table["site.founded"])

	_, err = Parse([]byte("a: [unclosed"))
	assert.Error(t, err)
}

func TestParse_SkipsNonScalarValues(t *testing.T) {
	raw := []byte(`
exercises:
  title: [Spine, Library]
  loading: Loading...
errors:
  404: Not found
`)
	table, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "Loading...", table["exercises.loading"])
	assert.NotContains(t, table, "exercises.title")
	assert.NotContains(t, table, "errors")

	tr := New("en", map[string]map[string]string{"en": table}).For("en")
	assert.Equal(t, Defaults["exercises.title"], tr.T("exercises.title"))
}

func TestLoad(t *testing.T) {
	c, err := Load(writeLocales(t), "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es"}, c.Locales())
	assert.True(t, c.Has("es-MX"))
	assert.False(t, c.Has("fr"))
}

func TestLoad_MissingDirServesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope"), "en")
	require.NoError(t, err)
	assert.Equal(t, Defaults["exercises.empty"], c.For("en").T("exercises.empty"))
}

func TestTranslator_FallbackChain(t *testing.T) {
	c, err := Load(writeLocales(t), "en")
	require.NoError(t, err)

	es := c.For("es")
	assert.Equal(t, "es", es.Locale())
	assert.Equal(t, "Biblioteca de ejercicios", es.T("exercises.title"))
	// es misses it, default locale has it
	assert.Equal(t, "Nothing here yet.", es.T("exercises.empty"))
	// neither locale has it, embedded default does
	assert.Equal(t, Defaults["exercises.loading"], es.T("exercises.loading"))
	// blank translation is treated as missing
	assert.Equal(t, "exercises.blank", es.T("exercises.blank"))
	// nothing anywhere: the key itself
	assert.Equal(t, "unknown.key", es.T("unknown.key"))
	assert.Equal(t, "?", es.T(""))

	// regional variant falls back to its base language
	assert.Equal(t, "Biblioteca de ejercicios", c.For("es_MX").T("exercises.title"))
	// empty locale is the default locale
	assert.Equal(t, "en", c.For("").Locale())
}

func TestTranslator_TotalOverDefaults(t *testing.T) {
	c := New("en", nil)
	for _, locale := range []string{"en", "de", ""} {
		tr := c.For(locale)
		for key := range Defaults {
			assert.NotEmpty(t, tr.T(key), "locale %q key %q", locale, key)
		}
	}
}

func TestCatalog_Resolve(t *testing.T) {
	c, err := Load(writeLocales(t), "en")
	require.NoError(t, err)
	resolved := c.Resolve("es")
	assert.Equal(t, "Biblioteca de ejercicios", resolved["exercises.title"])
	for k, v := range resolved {
		assert.NotEmpty(t, v, k)
	}
	assert.Contains(t, resolved, "difficulty.advanced")
}

func TestDefaults_NonEmpty(t *testing.T) {
	for k, v := range Defaults {
		assert.NotEmpty(t, v, k)
	}
}

func TestShippedLocalesCoverDefaults(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "web", "i18n"), "en")
	require.NoError(t, err)
	require.True(t, c.Has("en"))
	require.True(t, c.Has("es"))

	table, ok := c.table("en")
	require.True(t, ok)
	for key := range Defaults {
		assert.NotEmpty(t, table[key], "en.yaml is missing %s", key)
	}

	assert.Equal(t, "Principiante", c.For("es").T("difficulty.beginner"))
	assert.Equal(t, table["exercises.disclaimer"], c.For("es").T("exercises.disclaimer"))
}
