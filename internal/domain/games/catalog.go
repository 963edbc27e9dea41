package games

import (
	_ "embed"
	"sync"

	"github.com/bytedance/sonic"
)

//go:embed catalog.json
var catalogJSON []byte

var (
	catalogOnce sync.Once
	catalog     []Meta
)

// Catalog returns the bundled game metadata in display order.
func Catalog() []Meta {
	catalogOnce.Do(func() {
		if err := sonic.Unmarshal(catalogJSON, &catalog); err != nil {
			panic("games: invalid embedded catalog: " + err.Error())
		}
	})
	out := make([]Meta, len(catalog))
	copy(out, catalog)
	return out
}

// FilterOptions returns the catalog prefixed with the All option.
func FilterOptions() []Meta {
	return append([]Meta{{Key: All, Label: "All", Badge: "ALL"}}, Catalog()...)
}

// Lookup returns metadata for k. Unknown keys fall back to an "Other" entry.
func Lookup(k Key) Meta {
	for _, m := range Catalog() {
		if m.Key == k {
			return m
		}
	}
	return Meta{Key: Other, Label: "Other", Badge: "OTHER"}
}
