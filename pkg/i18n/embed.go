package i18n

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
	defaultCatalogErr  error
)

// EmbeddedFS returns the bundled locale files.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// DefaultCatalog loads the bundled catalogs once and shares the result.
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = LoadFS(EmbeddedFS())
	})
	return defaultCatalog, defaultCatalogErr
}

// MustDefaultCatalog panics when the bundled catalogs fail to load.
func MustDefaultCatalog() *Catalog {
	catalog, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
