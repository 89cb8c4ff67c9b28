package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_DrainPreservesOrder(t *testing.T) {
	q := NewQueue()
	q.Push(ScrollEvent{DY: -1})
	q.Push(EnterExploreEvent{})
	q.Push(KeyEvent{Key: 77})
	require.Equal(t, 3, q.Len())

	got := q.Drain()
	assert.Equal(t, []Event{ScrollEvent{DY: -1}, EnterExploreEvent{}, KeyEvent{Key: 77}}, got)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestQueue_IgnoresNil(t *testing.T) {
	q := NewQueue()
	q.Push(nil)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_DrainedSliceIsStable(t *testing.T) {
	q := NewQueue()
	q.Push(ResizeEvent{Width: 800, Height: 600})
	first := q.Drain()

	q.Push(QuitEvent{})
	assert.Equal(t, []Event{ResizeEvent{Width: 800, Height: 600}}, first)
	assert.Equal(t, []Event{QuitEvent{}}, q.Drain())
}

func TestQueue_ConcurrentPush(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 100 {
				q.Push(DragEvent{DX: float64(i)})
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, q.Drain(), 800)
}
