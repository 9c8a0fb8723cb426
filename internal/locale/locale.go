// Package locale translates the fixed strings of rendered pages. Keys are
// the English strings themselves, so a missing translation falls back to
// readable text.
package locale

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Lookuper is the localization collaborator consumed by the renderer.
type Lookuper interface {
	Lookup(key string) string
}

// Catalog is a Lookuper for one language.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
	keys    map[string]bool
}

// File is the on-disk shape of a catalog file:
//
//	language = "de"
//	[messages]
//	Description = "Beschreibung"
type File struct {
	Language string            `toml:"language"`
	Messages map[string]string `toml:"messages"`
}

// New builds a catalog for lang from the built-in translations plus the
// given TOML files. Files for other languages are ignored; later files
// override earlier ones.
func New(lang string, files ...string) (*Catalog, error) {
	tag, err := parseTag(lang)
	if err != nil {
		return nil, err
	}
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	c := &Catalog{tag: tag, keys: make(map[string]bool)}
	if msgs, ok := builtin[tag]; ok {
		if err := c.set(b, msgs); err != nil {
			return nil, err
		}
	}
	for _, path := range files {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		ft, err := parseTag(f.Language)
		if err != nil {
			return nil, fmt.Errorf("locale: %s: %w", path, err)
		}
		if ft != tag {
			continue
		}
		if err := c.set(b, f.Messages); err != nil {
			return nil, fmt.Errorf("locale: %s: %w", path, err)
		}
	}
	c.printer = message.NewPrinter(tag, message.Catalog(b))
	return c, nil
}

// English returns the identity catalog.
func English() *Catalog {
	c, _ := New("en")
	return c
}

// LoadFile reads one TOML catalog file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("locale: decode %s: %w", path, err)
	}
	return &f, nil
}

func (c *Catalog) set(b *catalog.Builder, msgs map[string]string) error {
	for key, msg := range msgs {
		// Messages are literal text, never format strings.
		if err := b.SetString(c.tag, key, strings.ReplaceAll(msg, "%", "%%")); err != nil {
			return err
		}
		c.keys[key] = true
	}
	return nil
}

// Lookup returns the translation of key, or key itself when none exists.
func (c *Catalog) Lookup(key string) string {
	if c == nil || c.printer == nil || !c.keys[key] {
		return key
	}
	return c.printer.Sprintf(key)
}

// Language returns the catalog's language tag.
func (c *Catalog) Language() string { return c.tag.String() }

func parseTag(lang string) (language.Tag, error) {
	if lang == "" {
		return language.English, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("locale: unknown language %q: %w", lang, err)
	}
	base, _ := tag.Base()
	return language.Make(base.String()), nil
}
