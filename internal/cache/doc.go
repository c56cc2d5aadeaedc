// Package cache provides a small generic cache for values that are expensive
// to build and safe to share, such as color distance lookup tables and
// configured scalers.
//
//	tables := cache.New[int, []float32](4)
//	table, err := tables.GetOrCreate(5, func() ([]float32, error) {
//		return buildTable(5), nil
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex). Hits take a read lock only.
package cache
