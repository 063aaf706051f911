// Package translate renders rule translation keys as localized messages.
// Catalogs map keys such as "validation.min_length" to templates with
// {{placeholder}} tokens; the best catalog for a requested language is picked
// with golang.org/x/text language matching, so "en-US" finds an "en" catalog
// and unknown languages fall back to the default.
package translate

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Catalog maps translation keys to message templates. Templates interpolate
// {{name}} tokens from the failure's placeholder values.
type Catalog map[string]string

// Translator holds catalogs per language and resolves the best match for a
// requested language tag. Safe for concurrent use; register catalogs before
// sharing across goroutines for predictable matching.
type Translator struct {
	mu       sync.RWMutex
	fallback language.Tag
	tags     []language.Tag
	catalogs map[language.Tag]Catalog
	matcher  language.Matcher
}

// New creates a translator with the given fallback language and its catalog.
// The fallback catalog answers every request that matches nothing better.
func New(fallback language.Tag, catalog Catalog) *Translator {
	t := &Translator{
		fallback: fallback,
		catalogs: map[language.Tag]Catalog{fallback: catalog},
		tags:     []language.Tag{fallback},
	}
	t.matcher = language.NewMatcher(t.tags)
	return t
}

// Register adds or replaces the catalog for a language.
func (t *Translator) Register(tag language.Tag, catalog Catalog) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.catalogs[tag]; !ok {
		t.tags = append(t.tags, tag)
		t.matcher = language.NewMatcher(t.tags)
	}
	t.catalogs[tag] = catalog
}

// Localize renders a key for the given language. The language is parsed
// leniently ("de", "de-AT", an Accept-Language value's first tag); anything
// unparseable uses the fallback. Keys missing from the matched catalog fall
// back to the default catalog, then to the key itself, mirroring how rule
// failures degrade: the key is still meaningful to a developer.
func (t *Translator) Localize(lang, key string, values map[string]any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tag := t.fallback
	if parsed, err := language.Parse(lang); err == nil {
		if _, index, confidence := t.matcher.Match(parsed); confidence > language.No {
			tag = t.tags[index]
		}
	}

	if template, ok := t.catalogs[tag][key]; ok {
		return interpolate(template, values)
	}
	if template, ok := t.catalogs[t.fallback][key]; ok {
		return interpolate(template, values)
	}
	return key
}

// Func binds a language, returning a localizer suitable for rules.Localized.
func (t *Translator) Func(lang string) func(key string, values map[string]any) string {
	return func(key string, values map[string]any) string {
		return t.Localize(lang, key, values)
	}
}

func interpolate(template string, values map[string]any) string {
	out := template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{{"+name+"}}", fmt.Sprintf("%v", value))
	}
	return out
}
