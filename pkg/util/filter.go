package util

// InPlaceFilter keeps only the elements matching the predicate, preserving
// their relative order and reusing the backing array
func InPlaceFilter[T any](s *[]T, predicate func(T) bool) {
	kept := 0
	for _, element := range *s {
		if predicate(element) {
			(*s)[kept] = element
			kept++
		}
	}
	*s = (*s)[:kept]
}
