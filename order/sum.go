package order

// CompareSum returns the sum of terms as computed in E together with the sign
// of (exact sum - target): -1, 0 or +1.
//
// For integer kinds the exact sum is tracked past overflow. Every wrapped
// addition records a carry of ±2^N, and a non-zero carry total puts the exact
// sum outside E's range, so it lies strictly above or below any target. The
// returned sum is the wrapped value and is only meant for display.
//
// For floating-point kinds the terms are added directly. A NaN sum compares
// as +1, so a scan treats it as "too large".
func CompareSum[E Number](target E, terms ...E) (E, int) {
	var sum E
	if !isInteger[E]() {
		for _, v := range terms {
			sum += v
		}
		switch {
		case sum < target:
			return sum, -1
		case sum == target:
			return sum, 0
		default:
			return sum, 1
		}
	}

	carry := 0
	for _, v := range terms {
		var c int
		sum, c = addCarry(sum, v)
		carry += c
	}
	switch {
	case carry > 0:
		return sum, 1
	case carry < 0:
		return sum, -1
	case sum < target:
		return sum, -1
	case sum > target:
		return sum, 1
	default:
		return sum, 0
	}
}

// addCarry returns the wrapped a+b and the carry out of it: +1 when the exact
// sum exceeds E's maximum, -1 when it falls below E's minimum.
func addCarry[E Number](a, b E) (E, int) {
	s := a + b
	switch {
	case b > 0 && s < a:
		return s, 1
	case b < 0 && s > a:
		return s, -1
	default:
		return s, 0
	}
}

// isInteger reports whether E is an integer kind: integer division truncates
// one half to zero.
func isInteger[E Number]() bool {
	one := E(1)
	return one/2 == 0
}
