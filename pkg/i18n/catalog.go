package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when nothing better matches.
const DefaultLocale = "en"

// Catalog is an immutable set of per-locale message tables.
type Catalog struct {
	defaultLocale string
	messages      map[string]map[string]string
	locales       []string
	matcher       language.Matcher
}

// CatalogOption configures LoadFS.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	defaultLocale string
}

// WithDefaultLocale overrides the locale used as the final fallback. It must
// be present in the loaded files.
func WithDefaultLocale(locale string) CatalogOption {
	return func(cfg *catalogConfig) {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			cfg.defaultLocale = trimmed
		}
	}
}

type catalogFile struct {
	Locale   string         `json:"locale" yaml:"locale"`
	Messages map[string]any `json:"messages" yaml:"messages"`
}

// LoadFS walks fsys for *.yaml, *.yml and *.json catalog files. The locale is
// read from the file's `locale` key, or from the file name when absent.
func LoadFS(fsys fs.FS, options ...CatalogOption) (*Catalog, error) {
	cfg := catalogConfig{defaultLocale: DefaultLocale}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if fsys == nil {
		return nil, fmt.Errorf("i18n: catalog filesystem is nil")
	}

	messages := make(map[string]map[string]string)
	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", p, err)
		}
		doc, err := parseCatalog(data, p)
		if err != nil {
			return err
		}

		locale := normalizeLocale(doc.Locale)
		if locale == "" {
			locale = normalizeLocale(strings.TrimSuffix(path.Base(p), path.Ext(p)))
		}
		if locale == "" {
			return fmt.Errorf("i18n: file %s does not declare a locale", p)
		}
		if _, exists := messages[locale]; exists {
			return fmt.Errorf("i18n: duplicate locale %q (file %s)", locale, p)
		}

		table := make(map[string]string)
		flattenMessages("", doc.Messages, table)
		messages[locale] = table
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewCatalog(messages, cfg.defaultLocale)
}

// NewCatalog builds a catalog from in-memory tables keyed by locale.
func NewCatalog(messages map[string]map[string]string, defaultLocale string) (*Catalog, error) {
	defaultLocale = normalizeLocale(defaultLocale)
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}

	tables := make(map[string]map[string]string, len(messages))
	for locale, table := range messages {
		key := normalizeLocale(locale)
		if key == "" {
			continue
		}
		clone := make(map[string]string, len(table))
		for k, v := range table {
			clone[strings.TrimSpace(k)] = v
		}
		tables[key] = clone
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("i18n: catalog has no locales")
	}
	if _, ok := tables[defaultLocale]; !ok {
		return nil, fmt.Errorf("i18n: default locale %q has no messages", defaultLocale)
	}

	locales := make([]string, 0, len(tables))
	for locale := range tables {
		if locale != defaultLocale {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	// the matcher treats its first tag as the fallback
	locales = append([]string{defaultLocale}, locales...)

	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tags = append(tags, language.Make(locale))
	}

	return &Catalog{
		defaultLocale: defaultLocale,
		messages:      tables,
		locales:       locales,
		matcher:       language.NewMatcher(tags),
	}, nil
}

// DefaultLocale returns the final fallback locale.
func (c *Catalog) DefaultLocale() string {
	if c == nil {
		return DefaultLocale
	}
	return c.defaultLocale
}

// Locales lists the loaded locales, default first.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.locales...)
}

// Has reports whether locale has its own table.
func (c *Catalog) Has(locale string) bool {
	if c == nil {
		return false
	}
	_, ok := c.messages[normalizeLocale(locale)]
	return ok
}

// Translate implements Translator. The lookup tries the exact locale, its base
// language and then the default locale.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	key = strings.TrimSpace(key)
	for _, candidate := range c.fallbackChain(locale) {
		table := c.messages[candidate]
		msg, ok := table[key]
		if !ok {
			continue
		}
		if len(args) > 0 {
			msg = fmt.Sprintf(msg, args...)
		}
		return msg, nil
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
}

// Match negotiates the best loaded locale for the given preferences (BCP 47
// strings, most preferred first). Unparseable entries are skipped.
func (c *Catalog) Match(preferences ...string) string {
	if c == nil {
		return DefaultLocale
	}
	tags := make([]language.Tag, 0, len(preferences))
	for _, pref := range preferences {
		tag, err := language.Parse(strings.TrimSpace(pref))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return c.match(tags)
}

// MatchAcceptLanguage negotiates against an HTTP Accept-Language header.
func (c *Catalog) MatchAcceptLanguage(header string) string {
	if c == nil {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return c.defaultLocale
	}
	return c.match(tags)
}

func (c *Catalog) match(tags []language.Tag) string {
	if len(tags) == 0 {
		return c.defaultLocale
	}
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(c.locales) {
		return c.defaultLocale
	}
	return c.locales[index]
}

func (c *Catalog) fallbackChain(locale string) []string {
	chain := make([]string, 0, 3)
	seen := make(map[string]struct{}, 3)
	add := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		if _, ok := c.messages[candidate]; !ok {
			return
		}
		seen[candidate] = struct{}{}
		chain = append(chain, candidate)
	}

	normalized := normalizeLocale(locale)
	add(normalized)
	if base, _, found := strings.Cut(normalized, "-"); found {
		add(base)
	}
	add(c.defaultLocale)
	return chain
}

func parseCatalog(data []byte, source string) (catalogFile, error) {
	var doc catalogFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return catalogFile{}, fmt.Errorf("i18n: file %s is empty", source)
	}

	if strings.EqualFold(path.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return catalogFile{}, fmt.Errorf("i18n: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return catalogFile{}, fmt.Errorf("i18n: parse %s: %w", source, err)
	}
	return doc, nil
}

func flattenMessages(prefix string, values map[string]any, dest map[string]string) {
	for key, value := range values {
		full := strings.TrimSpace(key)
		if prefix != "" {
			full = prefix + "." + full
		}
		switch typed := value.(type) {
		case map[string]any:
			flattenMessages(full, typed, dest)
		case nil:
			dest[full] = ""
		default:
			dest[full] = fmt.Sprint(typed)
		}
	}
}

func isCatalogFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.ToLower(locale)
}
