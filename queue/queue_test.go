// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package queue_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tinytls/tinytls/queue"
)

func TestFIFOOrder(t *testing.T) {
	var q queue.FIFO[int]
	require.True(t, q.Empty())
	for i := 0; i < 100; i++ {
		q.PushBack(i)
	}
	require.Equal(t, 100, q.Len())
	for i := 0; i < 100; i++ {
		v, ok := q.PopFront()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	_, ok := q.PopFront()
	require.False(t, ok)
}

func TestFIFOInterleaved(t *testing.T) {
	var q queue.FIFO[int]
	next := 0
	for i := 0; i < 1000; i++ {
		q.PushBack(i)
		if i%3 == 0 {
			v, ok := q.PopFront()
			require.True(t, ok)
			require.Equal(t, next, v)
			next++
		}
	}
	for !q.Empty() {
		v, ok := q.PopFront()
		require.True(t, ok)
		require.Equal(t, next, v)
		next++
	}
	require.Equal(t, 1000, next)
}

func TestFIFOClear(t *testing.T) {
	var q queue.FIFO[string]
	q.PushBack("a")
	q.PushBack("b")
	q.Clear()
	require.True(t, q.Empty())
	q.PushBack("c")
	v, ok := q.PopFront()
	require.True(t, ok)
	require.Equal(t, "c", v)
}
