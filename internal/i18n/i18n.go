// Package i18n resolves page copy. Lookups are total: a missing translation
// falls back to the default locale, then to the embedded default, and finally
// to the key itself.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"neuro-site/internal/domain"
	"neuro-site/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Catalog holds flattened translations per locale.
type Catalog struct {
	defaultLocale string
	locales       map[string]map[string]string
	defaults      map[string]string
}

// New builds a catalog from already-flattened tables.
func New(defaultLocale string, locales map[string]map[string]string) *Catalog {
	if locales == nil {
		locales = make(map[string]map[string]string)
	}
	return &Catalog{
		defaultLocale: normalize(defaultLocale),
		locales:       locales,
		defaults:      Defaults,
	}
}

// Load reads every <locale>.yaml file in dir. A missing directory yields a
// catalog that serves the embedded defaults only.
func Load(dir, defaultLocale string) (*Catalog, error) {
	locales := make(map[string]map[string]string)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Get().Warn("Translation directory not found, serving embedded defaults", zap.String("dir", dir))
			return New(defaultLocale, locales), nil
		}
		return nil, fmt.Errorf("could not read translations directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read translation file %s: %w", name, err)
		}
		table, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("could not parse translation file %s: %w", name, err)
		}
		locales[normalize(strings.TrimSuffix(name, ext))] = table
	}

	logger.Get().Info("Translations loaded", zap.Int("locales", len(locales)), zap.String("default", defaultLocale))
	return New(defaultLocale, locales), nil
}

// Parse flattens a nested YAML document into dotted keys.
func Parse(raw []byte) (map[string]string, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flatten("", doc, out)
	return out, nil
}

func flatten(prefix string, node interface{}, out map[string]string) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case string:
		out[prefix] = v
	case bool, int, int64, uint64, float64:
		out[prefix] = fmt.Sprint(v)
	case nil:
	default:
		// Lists and maps with non-string keys are not page copy.
		logger.Get().Warn("Ignoring non-scalar translation", zap.String("key", prefix), zap.String("type", fmt.Sprintf("%T", v)))
	}
}

func normalize(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// Locales lists the loaded locales in sorted order.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for l := range c.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Has reports whether the locale, or its base language, was loaded.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.table(normalize(locale))
	return ok
}

func (c *Catalog) table(locale string) (map[string]string, bool) {
	if t, ok := c.locales[locale]; ok {
		return t, true
	}
	if base, _, found := strings.Cut(locale, "-"); found {
		t, ok := c.locales[base]
		return t, ok
	}
	return nil, false
}

// For returns a Translator bound to the locale.
func (c *Catalog) For(locale string) domain.Translator {
	locale = normalize(locale)
	if locale == "" {
		locale = c.defaultLocale
	}
	return &translator{catalog: c, locale: locale}
}

func (c *Catalog) lookup(locale, key string) string {
	if t, ok := c.table(locale); ok {
		if s := strings.TrimSpace(t[key]); s != "" {
			return t[key]
		}
	}
	if locale != c.defaultLocale {
		if t, ok := c.table(c.defaultLocale); ok {
			if s := strings.TrimSpace(t[key]); s != "" {
				return t[key]
			}
		}
	}
	if s, ok := c.defaults[key]; ok && strings.TrimSpace(s) != "" {
		logger.Get().Debug("Translation missing, using embedded default", zap.String("locale", locale), zap.String("key", key))
		return s
	}
	logger.Get().Debug("Translation and default missing, using key", zap.String("locale", locale), zap.String("key", key))
	if strings.TrimSpace(key) == "" {
		return "?"
	}
	return key
}

// Resolve returns every known key for the locale, fully resolved.
func (c *Catalog) Resolve(locale string) map[string]string {
	tr := c.For(locale)
	keys := make(map[string]struct{}, len(c.defaults))
	for k := range c.defaults {
		keys[k] = struct{}{}
	}
	if t, ok := c.table(normalize(locale)); ok {
		for k := range t {
			keys[k] = struct{}{}
		}
	}
	out := make(map[string]string, len(keys))
	for k := range keys {
		out[k] = tr.T(k)
	}
	return out
}

type translator struct {
	catalog *Catalog
	locale  string
}

func (t *translator) T(key string) string {
	return t.catalog.lookup(t.locale, key)
}

func (t *translator) Locale() string {
	return t.locale
}
