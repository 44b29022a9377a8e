package alg

import "slices"

// Index addresses a stack or queue without mutating it; position 0 is the
// stack top / queue front.
type Index[T comparable] interface {
	Index(int) (T, bool)
}

type Stack[T comparable] interface {
	Index[T]
	Clear()
	Push(T)
	Pop() (T, bool)
	Peek() (T, bool)
	Size() int

	Copy() Stack[T]
	Equal(Stack[T]) bool
}

type Queue[T comparable] interface {
	Index[T]
	Clear()
	Push(T)
	Enqueue(T)
	Dequeue() (T, bool)
	Pop() (T, bool)
	Peek() (T, bool)
	Size() int

	Copy() Queue[T]
	Equal(Queue[T]) bool
}

type StackArray[T comparable] struct {
	Array []T
}

var _ Stack[int] = &StackArray[int]{}

func (s *StackArray[T]) Equal(other Stack[T]) bool {
	o, ok := other.(*StackArray[T])
	if !ok {
		return false
	}
	return slices.Equal(s.Array, o.Array)
}

func (s *StackArray[T]) Clear() {
	s.Array = s.Array[0:0]
}

func (s *StackArray[T]) Push(val T) {
	s.Array = append(s.Array, val)
}

func (s *StackArray[T]) Pop() (T, bool) {
	if s.Size() == 0 {
		var zero T
		return zero, false
	}
	retval := s.Array[len(s.Array)-1]
	s.Array = s.Array[:len(s.Array)-1]
	return retval, true
}

func (s *StackArray[T]) Index(index int) (T, bool) {
	if index < 0 || index >= s.Size() {
		var zero T
		return zero, false
	}
	return s.Array[len(s.Array)-1-index], true
}

func (s *StackArray[T]) Peek() (T, bool) {
	return s.Index(0)
}

func (s *StackArray[T]) Size() int {
	return len(s.Array)
}

func (s *StackArray[T]) Copy() Stack[T] {
	newArray := make([]T, len(s.Array), cap(s.Array))
	copy(newArray, s.Array)
	return &StackArray[T]{newArray}
}

func NewStackArray[T comparable](size int) *StackArray[T] {
	return &StackArray[T]{make([]T, 0, size)}
}

type QueueSlice[T comparable] struct {
	slice []T
}

var _ Queue[int] = &QueueSlice[int]{}

func (q *QueueSlice[T]) Equal(other Queue[T]) bool {
	o, ok := other.(*QueueSlice[T])
	if !ok {
		return false
	}
	return slices.Equal(q.slice, o.slice)
}

func (q *QueueSlice[T]) Clear() {
	q.slice = q.slice[0:0]
}

func (q *QueueSlice[T]) Enqueue(val T) {
	q.slice = append(q.slice, val)
}

func (q *QueueSlice[T]) Dequeue() (T, bool) {
	if q.Size() == 0 {
		var zero T
		return zero, false
	}
	retval := q.slice[0]
	q.slice = q.slice[1:]
	return retval, true
}

func (q *QueueSlice[T]) Index(index int) (T, bool) {
	if index < 0 || index >= q.Size() {
		var zero T
		return zero, false
	}
	return q.slice[index], true
}

func (q *QueueSlice[T]) Peek() (T, bool) {
	return q.Index(0)
}

// Pop is mapped to the front of the queue, so it acts like a dequeue.
func (q *QueueSlice[T]) Pop() (T, bool) {
	return q.Dequeue()
}

// Push prepends, returning a value to the front of the queue.
func (q *QueueSlice[T]) Push(val T) {
	oldSlice := q.slice
	q.slice = make([]T, 1+len(oldSlice), 1+cap(oldSlice))
	q.slice[0] = val
	copy(q.slice[1:], oldSlice)
}

func (q *QueueSlice[T]) Size() int {
	return len(q.slice)
}

func (q *QueueSlice[T]) Copy() Queue[T] {
	newSlice := make([]T, len(q.slice), cap(q.slice))
	copy(newSlice, q.slice)
	return &QueueSlice[T]{newSlice}
}

func NewQueueSlice[T comparable](size int) *QueueSlice[T] {
	return &QueueSlice[T]{make([]T, 0, size)}
}
