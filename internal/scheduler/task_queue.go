package scheduler

import (
	"time"

	"cleaning/internal/core/ports"
)

type scheduledTask struct {
	at   time.Time
	seq  uint64
	task ports.Task
}

// taskQueue implements heap.Interface. Ties on fire time keep scheduling order.
type taskQueue []*scheduledTask

func (q taskQueue) Len() int {
	return len(q)
}

func (q taskQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(*scheduledTask))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
