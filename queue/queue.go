// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package queue

// FIFO over a circular buffer. Pop order always equals push order,
// which is what the handshake transcript depends on.
type FIFO[T any] struct {
	elements  []T  // length == capacity == 2^x
	read_pos  uint // uint because we rely on integer overflow
	write_pos uint
}

func (s *FIFO[T]) Len() int {
	return int(s.write_pos - s.read_pos) // diff will always fit int and be >= 0
}

func (s *FIFO[T]) Empty() bool {
	return s.write_pos == s.read_pos
}

func (s *FIFO[T]) mask() uint { return uint(len(s.elements)) - 1 } // also correct for 0 length

func (s *FIFO[T]) grow(newCapacity int) {
	capacity := len(s.elements)
	if capacity == 0 {
		capacity = 1
	}
	for capacity < newCapacity {
		capacity *= 2
	}
	elements := make([]T, capacity) // size will forever be equal to capacity
	off := 0
	for i := 0; i < s.Len(); i++ {
		elements[i] = s.elements[(s.read_pos+uint(i))&s.mask()]
		off++
	}
	s.read_pos = 0
	s.write_pos = uint(off)
	s.elements = elements
}

func (s *FIFO[T]) PushBack(element T) {
	capacity := len(s.elements)
	if s.Len() == capacity {
		s.grow(max(4, capacity*2))
	}
	s.elements[s.write_pos&s.mask()] = element
	s.write_pos++
}

func (s *FIFO[T]) Front() T {
	if s.write_pos == s.read_pos {
		panic("empty queue")
	}
	return s.elements[s.read_pos&s.mask()]
}

// PopFront returns the zero value and false on an empty queue,
// so the drain loops need no separate emptiness check.
func (s *FIFO[T]) PopFront() (T, bool) {
	if s.write_pos == s.read_pos {
		var zero T
		return zero, false
	}
	element := s.elements[s.read_pos&s.mask()]
	s.elements[s.read_pos&s.mask()] = *new(T) // do not retain popped elements
	s.read_pos++
	return element, true
}

func (s *FIFO[T]) Clear() {
	for !s.Empty() {
		_, _ = s.PopFront()
	}
}
