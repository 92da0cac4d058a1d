package tour

import "fmt"

// TotalDistance returns the length of the closed tour visiting cities in route order,
// including the edge from the last city back to the first.
//
// route must be a permutation of all city indices; TotalDistance does not check it.
// Use ValidateRoute when the route comes from outside the search.
func TotalDistance(cities []City, route []int) float64 {
	n := len(route)
	if n == 0 {
		return 0
	}

	var total float64
	for i := 1; i < n; i++ {
		total += Distance(cities[route[i]], cities[route[i-1]])
	}
	total += Distance(cities[route[0]], cities[route[n-1]])

	return total
}

// ValidateRoute checks that route visits every one of n cities exactly once
func ValidateRoute(route []int, n int) error {
	if len(route) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidRoute, len(route), n)
	}

	seen := make([]bool, n)
	for pos, c := range route {
		if c < 0 || c >= n {
			return fmt.Errorf("%w: city %d at position %d out of range", ErrInvalidRoute, c, pos)
		}
		if seen[c] {
			return fmt.Errorf("%w: city %d repeated at position %d", ErrInvalidRoute, c, pos)
		}
		seen[c] = true
	}

	return nil
}

// ValidateCount checks a city count against the solver limits
func ValidateCount(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewCities, n)
	}
	if n > MaxCities {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyCities, n, MaxCities)
	}
	return nil
}

// VisitOrder formats a route as "a -> b -> ... -> a", closing the tour at its first city
func VisitOrder(route []int) string {
	if len(route) == 0 {
		return ""
	}

	buf := make([]byte, 0, len(route)*6)
	for _, c := range route {
		buf = fmt.Appendf(buf, "%d -> ", c)
	}
	buf = fmt.Appendf(buf, "%d", route[0])
	return string(buf)
}
