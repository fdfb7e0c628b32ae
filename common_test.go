package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircularQueue(t *testing.T) {
	q := NewCircularQueue[int](3)
	assert.True(t, q.IsEmpty())

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	assert.True(t, q.IsFull())
	assert.Equal(t, 3, q.PeekLast())

	// overwrites the oldest
	q.Enqueue(4)
	assert.Equal(t, 3, q.Length)
	assert.Equal(t, 2, q.PeekFirst())
	assert.Equal(t, 4, q.PeekLast())
	assert.Equal(t, []int{2, 3, 4}, []int{q.At(0), q.At(1), q.At(2)})

	assert.Equal(t, 2, q.Dequeue())
	assert.Equal(t, 2, q.Length)

	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.Panics(t, func() { q.Dequeue() })
}

func TestScreenshotName(t *testing.T) {
	now := time.Date(2024, 3, 7, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "pic-0307140509.png", ScreenshotName(now, nil))

	taken := map[string]bool{
		"pic-0307140509.png":     true,
		"pic-0307140509-(2).png": true,
	}
	assert.Equal(t, "pic-0307140509-(3).png", ScreenshotName(now, taken))
}

func TestDebugMsgsString(t *testing.T) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = nil
	dm.PersistentDebugMsgs = nil
	t.Cleanup(func() {
		dm.DebugMsgs = nil
		dm.PersistentDebugMsgs = nil
	})

	DebugPutsPersist("mode", "cpu")
	DebugPrint("fps", 60)
	DebugPrintf("clock", "%.2f", 1.5)
	DebugPrint("fps", 59)

	assert.Equal(t, "mode: cpu\nfps: 59\nclock: 1.50", DebugMsgsString())

	ClearDebugMsgs()
	assert.Equal(t, "mode: cpu", DebugMsgsString())
}
