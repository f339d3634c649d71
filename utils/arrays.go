package utils

func ArrayMap[V any, R any](arr []V, mappingFunc func(V) R) []R {
	result := make([]R, len(arr))
	for i, v := range arr {
		result[i] = mappingFunc(v)
	}
	return result
}

func ArrayFilter[V any](arr []V, filterFunc func(V) bool) []V {
	result := make([]V, 0, len(arr))
	for i, v := range arr {
		if filterFunc(v) {
			result = append(result, arr[i])
		}
	}
	return result
}
