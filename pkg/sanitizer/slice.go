package sanitizer

func HasDuplicates[T comparable](items []T) bool {
	seen := make(map[T]struct{}, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			return true
		}
		seen[item] = struct{}{}
	}

	return false
}
