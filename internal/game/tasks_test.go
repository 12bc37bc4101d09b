package game

import (
	"testing"
	"time"
)

func TestTaskQueue_RunsInDueOrder(t *testing.T) {
	q := NewTaskQueue()
	var got []string
	q.Schedule("c", 30*time.Millisecond, func() { got = append(got, "c") })
	q.Schedule("a", 10*time.Millisecond, func() { got = append(got, "a") })
	q.Schedule("b", 20*time.Millisecond, func() { got = append(got, "b") })

	q.Advance(15 * time.Millisecond)
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("after 15ms expected [a], got %v", got)
	}
	q.Advance(time.Second)
	if len(got) != 3 || got[1] != "b" || got[2] != "c" {
		t.Fatalf("expected [a b c], got %v", got)
	}
	if q.Pending() != 0 {
		t.Fatalf("queue should be empty, %d pending", q.Pending())
	}
}

func TestTaskQueue_SameInstantIsFIFO(t *testing.T) {
	q := NewTaskQueue()
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		q.Schedule("x", 50*time.Millisecond, func() { got = append(got, i) })
	}
	q.Advance(50 * time.Millisecond)
	for i, v := range got {
		if v != i {
			t.Fatalf("expected FIFO order, got %v", got)
		}
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 tasks to run, got %d", len(got))
	}
}

func TestTaskQueue_Cancel(t *testing.T) {
	q := NewTaskQueue()
	ran := false
	id := q.Schedule("x", time.Millisecond, func() { ran = true })
	if !q.IsPending(id) {
		t.Fatal("task should be pending")
	}
	if !q.Cancel(id) {
		t.Fatal("cancel of a pending task should report true")
	}
	if q.Cancel(id) {
		t.Fatal("second cancel should report false")
	}
	q.Advance(time.Second)
	if ran {
		t.Fatal("cancelled task ran")
	}
}

func TestTaskQueue_NestedScheduleRunsWhenDue(t *testing.T) {
	q := NewTaskQueue()
	var at []time.Duration
	q.Schedule("outer", 10*time.Millisecond, func() {
		at = append(at, q.Now())
		q.Schedule("inner", 0, func() { at = append(at, q.Now()) })
		q.Schedule("later", time.Second, func() { at = append(at, q.Now()) })
	})
	q.Advance(20 * time.Millisecond)
	if len(at) != 2 {
		t.Fatalf("outer and zero-delay inner should both run, got %d", len(at))
	}
	if q.PendingLabel("later") != 1 {
		t.Fatalf("later task should still be pending")
	}
}

func TestTaskQueue_NegativeDelayClamped(t *testing.T) {
	q := NewTaskQueue()
	q.Advance(time.Second)
	ran := false
	q.Schedule("x", -time.Hour, func() { ran = true })
	q.Advance(0)
	if !ran {
		t.Fatal("negative delay should run on the next advance")
	}
	if q.Now() != time.Second {
		t.Fatalf("clock moved: %v", q.Now())
	}
}
