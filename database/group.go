package database

// groupBy folds an ordered slice of rows into per-key groups. Input order is
// preserved within each group, which is what lets the read assemblers lean on
// the store's ORDER BY when reattaching child rows to parents.
func groupBy[K comparable, T any](rows []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, row := range rows {
		k := key(row)
		groups[k] = append(groups[k], row)
	}
	return groups
}
