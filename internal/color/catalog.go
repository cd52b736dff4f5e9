package color

// Catalog color names.
const (
	CatalogText           = "textColor"
	CatalogTextBackground = "textBackgroundColor"
	CatalogWhite          = "white"
	CatalogBlack          = "black"
	CatalogClear          = "clear"
)

var catalog = map[string][4]float64{
	CatalogText:           {0, 0, 0, 1},
	CatalogTextBackground: {1, 1, 1, 1},
	CatalogWhite:          {1, 1, 1, 1},
	CatalogBlack:          {0, 0, 0, 1},
	CatalogClear:          {0, 0, 0, 0},
}

// InCatalog reports whether name is a known catalog color.
func InCatalog(name string) bool {
	_, ok := catalog[name]
	return ok
}
