package vars

// Invert swaps keys and values of a one-to-one mapping.
func Invert[K, V comparable](m map[K]V) map[V]K {
	ret := make(map[V]K, len(m))
	for k, v := range m {
		ret[v] = k
	}
	return ret
}
