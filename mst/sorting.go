package mst

// Generic in-place ordering primitives over [lo, hi) index ranges of an owned
// buffer. less must be a strict weak order; with core.Less it is total.

// insertionSort sorts buf[lo:hi].
func insertionSort[T any](buf []T, lo, hi int, less func(a, b T) bool) {
	for i := lo + 1; i < hi; i++ {
		x := buf[i]
		j := i
		for j > lo && less(x, buf[j-1]) {
			buf[j] = buf[j-1]
			j--
		}
		buf[j] = x
	}
}

// medianOfThree returns the index of the median of buf[lo], buf[mid] and
// buf[hi-1]. Requires hi-lo >= 1.
func medianOfThree[T any](buf []T, lo, hi int, less func(a, b T) bool) int {
	a, b, c := lo, lo+(hi-lo)/2, hi-1
	if less(buf[b], buf[a]) {
		a, b = b, a
	}
	if less(buf[c], buf[b]) {
		b = c
		if less(buf[b], buf[a]) {
			b = a
		}
	}

	return b
}

// partition moves buf[p] to its final sorted position i within [lo, hi):
// buf[lo:i] < pivot ≤ buf[i+1:hi] afterwards. Returns i.
// Every call settles one element, so loops built on it terminate.
func partition[T any](buf []T, lo, hi, p int, less func(a, b T) bool) int {
	last := hi - 1
	buf[p], buf[last] = buf[last], buf[p]
	pivot := buf[last]

	i := lo
	for j := lo; j < last; j++ {
		if less(buf[j], pivot) {
			buf[i], buf[j] = buf[j], buf[i]
			i++
		}
	}
	buf[i], buf[last] = buf[last], buf[i]

	return i
}

type span struct{ lo, hi int }

// quickSort sorts buf with an explicit stack: median-of-three pivots,
// insertion sort at or below InsertionSortCutoff, the larger side pushed and
// the smaller side iterated so the stack stays O(log len(buf)).
// It returns the number of partition steps.
func quickSort[T any](buf []T, less func(a, b T) bool) int {
	parts := 0
	stack := []span{{0, len(buf)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for s.hi-s.lo > InsertionSortCutoff {
			p := partition(buf, s.lo, s.hi, medianOfThree(buf, s.lo, s.hi, less), less)
			parts++
			if p-s.lo < s.hi-p-1 {
				stack = append(stack, span{p + 1, s.hi})
				s.hi = p
			} else {
				stack = append(stack, span{s.lo, p})
				s.lo = p + 1
			}
		}
		insertionSort(buf, s.lo, s.hi, less)
	}

	return parts
}
