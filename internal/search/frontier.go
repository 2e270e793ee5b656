package search

import "container/heap"

// frontierItem references an arena node together with its ordering
// key. seq preserves insertion order so that equal keys pop FIFO and
// runs stay deterministic.
type frontierItem struct {
	id  int
	key int
	seq int
}

type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].key != f[j].key {
		return f[i].key < f[j].key
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

func (f *frontier) push(id, key, seq int) {
	heap.Push(f, frontierItem{id: id, key: key, seq: seq})
}

func (f *frontier) pop() frontierItem {
	return heap.Pop(f).(frontierItem)
}
