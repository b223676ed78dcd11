// Package i18n serves the localized message catalogs embedded into the binary.
// Each locale is one YAML file under locales/, flattened into dotted keys
// ("validation.required", "app.save").
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Bundle is the flattened message set of a single locale.
type Bundle map[string]string

// Locale describes a supported locale for listings.
type Locale struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var loadBundles = sync.OnceValues(func() (map[string]Bundle, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}

	bundles := make(map[string]Bundle, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}

		raw, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}

		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}

		b := make(Bundle)
		flatten("", tree, b)
		bundles[strings.TrimSuffix(name, ".yaml")] = b
	}
	return bundles, nil
})

func flatten(prefix string, node map[string]any, out Bundle) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func mustBundles() map[string]Bundle {
	b, err := loadBundles()
	if err != nil {
		// The catalogs are compiled in; a parse failure is a build defect.
		panic(err)
	}
	return b
}

// Codes returns the sorted codes of every embedded locale.
func Codes() []string {
	bundles := mustBundles()
	codes := make([]string, 0, len(bundles))
	for code := range bundles {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// IsSupported reports whether a catalog exists for code.
func IsSupported(code string) bool {
	_, ok := mustBundles()[code]
	return ok
}

// Catalog translates message keys, falling back to a configured locale
// for unsupported locales and missing keys.
type Catalog struct {
	fallback string
	bundles  map[string]Bundle
}

// New creates a Catalog over the embedded locales.
func New(fallback string) (*Catalog, error) {
	bundles, err := loadBundles()
	if err != nil {
		return nil, err
	}
	if _, ok := bundles[fallback]; !ok {
		return nil, fmt.Errorf("i18n: fallback locale %q has no catalog", fallback)
	}
	return &Catalog{fallback: fallback, bundles: bundles}, nil
}

// Fallback returns the configured fallback locale.
func (c *Catalog) Fallback() string {
	return c.fallback
}

// Supports reports whether locale has its own catalog.
func (c *Catalog) Supports(locale string) bool {
	_, ok := c.bundles[locale]
	return ok
}

// Translate returns the message for key in locale. Replacements are
// name/value pairs substituted for ":name" placeholders. An unknown key
// is returned as is.
func (c *Catalog) Translate(locale, key string, replacements ...string) string {
	msg, ok := c.bundles[locale][key]
	if !ok {
		msg, ok = c.bundles[c.fallback][key]
	}
	if !ok {
		return key
	}
	if len(replacements) < 2 {
		return msg
	}

	pairs := make([]string, 0, len(replacements))
	for i := 0; i+1 < len(replacements); i += 2 {
		pairs = append(pairs, ":"+replacements[i], replacements[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Bundle returns a copy of the full message set for locale, with keys
// missing from it filled in from the fallback locale.
func (c *Catalog) Bundle(locale string) Bundle {
	base := c.bundles[c.fallback]
	out := make(Bundle, len(base))
	for k, v := range base {
		out[k] = v
	}
	if locale != c.fallback {
		for k, v := range c.bundles[locale] {
			out[k] = v
		}
	}
	return out
}

// BundleJSON returns Bundle(locale) encoded as a JSON object string.
func (c *Catalog) BundleJSON(locale string) (string, error) {
	raw, err := json.Marshal(c.Bundle(locale))
	if err != nil {
		return "", fmt.Errorf("i18n: encode bundle %s: %w", locale, err)
	}
	return string(raw), nil
}

// Locales lists the supported locales with their self-names
// ("fr" -> "français").
func (c *Catalog) Locales() []Locale {
	codes := make([]string, 0, len(c.bundles))
	for code := range c.bundles {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	out := make([]Locale, 0, len(codes))
	for _, code := range codes {
		name := code
		if tag, err := language.Parse(code); err == nil {
			if n := display.Self.Name(tag); n != "" {
				name = n
			}
		}
		out = append(out, Locale{Code: code, Name: name})
	}
	return out
}
