package gen

import (
	"fmt"
	"sort"
)

// topoSort returns node indices in dependency order and the nodes left over
// because they sit on or behind a cycle.
//
// depsFn(i) yields indices that must come before i. The result is
// deterministic: when multiple nodes are available, the smallest index wins.
func topoSort(n int, depsFn func(i int) []int) (order, blocked []int, err error) {
	if n <= 0 {
		return nil, nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order = make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	for i := range n {
		if indeg[i] > 0 {
			blocked = append(blocked, i)
		}
	}

	return order, blocked, nil
}

// onCycle reports whether start can reach itself through nodes in allowed.
func onCycle(start int, depsFn func(i int) []int, allowed map[int]bool) bool {
	seen := make(map[int]bool)
	stack := append([]int(nil), depsFn(start)...)

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if i == start {
			return true
		}

		if seen[i] || !allowed[i] {
			continue
		}

		seen[i] = true
		stack = append(stack, depsFn(i)...)
	}

	return false
}
