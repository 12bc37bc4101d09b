package game

import (
	"container/heap"
	"time"
)

// TaskID identifies a scheduled task. Zero is never issued.
type TaskID uint64

type task struct {
	id    TaskID
	label string
	due   time.Duration
	fn    func()
	index int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].id < h[j].id
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// TaskQueue runs deferred callbacks on a virtual clock. Everything happens on
// the caller's goroutine: tasks only run from inside Advance, so they
// interleave with frames but never overlap them.
type TaskQueue struct {
	now    time.Duration
	nextID TaskID
	heap   taskHeap
	byID   map[TaskID]*task
}

// NewTaskQueue returns an empty queue at time zero.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{byID: make(map[TaskID]*task)}
}

// Now returns the virtual clock.
func (q *TaskQueue) Now() time.Duration { return q.now }

// Schedule runs fn after delay. Tasks due at the same instant run in the
// order they were scheduled.
func (q *TaskQueue) Schedule(label string, delay time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	return q.ScheduleAt(label, q.now+delay, fn)
}

// ScheduleAt runs fn once the clock reaches due.
func (q *TaskQueue) ScheduleAt(label string, due time.Duration, fn func()) TaskID {
	q.nextID++
	t := &task{id: q.nextID, label: label, due: due, fn: fn}
	heap.Push(&q.heap, t)
	q.byID[t.id] = t
	return t.id
}

// Cancel removes a pending task. It reports whether the task was pending.
func (q *TaskQueue) Cancel(id TaskID) bool {
	t, ok := q.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&q.heap, t.index)
	delete(q.byID, id)
	return true
}

// Advance moves the clock forward by dt and runs every task that has come
// due, including tasks scheduled by those tasks.
func (q *TaskQueue) Advance(dt time.Duration) {
	if dt > 0 {
		q.now += dt
	}
	for len(q.heap) > 0 && q.heap[0].due <= q.now {
		t := heap.Pop(&q.heap).(*task)
		delete(q.byID, t.id)
		t.fn()
	}
}

// Pending returns the number of tasks waiting to run.
func (q *TaskQueue) Pending() int { return len(q.heap) }

// PendingLabel counts waiting tasks with the given label.
func (q *TaskQueue) PendingLabel(label string) int {
	n := 0
	for _, t := range q.heap {
		if t.label == label {
			n++
		}
	}
	return n
}

// IsPending reports whether id is still waiting to run.
func (q *TaskQueue) IsPending(id TaskID) bool {
	_, ok := q.byID[id]
	return ok
}
