package plural

import "fmt"

// Slice returns suffix unless s has exactly one element.
func Slice[S ~[]E, E any](s S, suffix string) string {
	return Of(len(s), suffix)
}

// Of returns suffix unless n is one.
func Of(n int, suffix string) string {
	if n == 1 {
		return ""
	}
	return suffix
}

// Count formats n followed by noun, pluralized with an "s" as needed.
func Count(n int, noun string) string {
	return fmt.Sprintf("%d %s%s", n, noun, Of(n, "s"))
}
