// Package vec holds the dense representation vectors passed between the
// parsing core and its scoring collaborators. The core treats vectors as
// opaque payloads except for width checks.
package vec

import "slices"

type Vector []float64

func Zeros(dim int) Vector {
	return make(Vector, dim)
}

func (v Vector) Dim() int {
	return len(v)
}

func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)
	return newVec
}

func (v Vector) Equal(other Vector) bool {
	return slices.Equal(v, other)
}

func (v Vector) IsZero() bool {
	for _, val := range v {
		if val != 0 {
			return false
		}
	}
	return true
}

// Concat joins vectors front to back into a single new vector.
func Concat(vectors ...Vector) Vector {
	total := 0
	for _, v := range vectors {
		total += len(v)
	}
	result := make(Vector, 0, total)
	for _, v := range vectors {
		result = append(result, v...)
	}
	return result
}
