package milp

// frontier is a min-heap of *branch ordered by estimate ascending, so the
// branch with the most promising relaxed bound is explored first. Equal
// estimates pop the most recently created branch first (depth-first among
// siblings, low child before high child).
type frontier []*branch

// Len returns the number of pending branches.
func (f frontier) Len() int { return len(f) }

// Less orders by estimate, then by newest seq.
func (f frontier) Less(i, j int) bool {
	if f[i].estimate != f[j].estimate {
		return f[i].estimate < f[j].estimate
	}

	return f[i].seq > f[j].seq
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x, which must be a *branch. Called by heap.Push.
func (f *frontier) Push(x any) { *f = append(*f, x.(*branch)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return b
}
