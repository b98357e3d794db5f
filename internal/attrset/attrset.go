// Package attrset provides a bounded, uniqueness-enforcing set over a
// closed enumeration. The domain's cardinality is known statically and
// must not exceed 64 members, so the whole set fits in one machine word:
// membership is a mask test and the algebra operations are single bitwise
// instructions. Iteration order is the enumeration's declared order, never
// insertion order, which is what makes serialization built on these sets
// deterministic.
package attrset

import (
	"errors"
	"math/bits"
)

var (
	// ErrDuplicate is returned by Insert when the value is already a
	// member.
	ErrDuplicate = errors.New("attrset: value already present")

	// ErrFull is returned by Insert when every domain member is already
	// present, so no new distinct value can be inserted.
	ErrFull = errors.New("attrset: set is full")
)

// Domain describes a closed enumeration of at most 64 members. Ordinal
// maps a member to its 0-based position in declaration order and
// FromOrdinal inverts it; both must be total over the domain.
type Domain[T comparable] interface {
	Size() int
	Ordinal(T) int
	FromOrdinal(int) T
}

// Set is a value-type set over the domain D. The zero value is the empty
// set. Sets compare with ==, independent of how their members were
// inserted, because the only state is the member bitmask.
type Set[T comparable, D Domain[T]] struct {
	bits uint64
}

// New builds a set from the given members. A repeated member is an error.
func New[T comparable, D Domain[T]](members ...T) (Set[T, D], error) {
	var s Set[T, D]
	for _, m := range members {
		if err := s.Insert(m); err != nil {
			return Set[T, D]{}, err
		}
	}
	return s, nil
}

// Empty returns the empty set. Equivalent to the zero value.
func Empty[T comparable, D Domain[T]]() Set[T, D] {
	return Set[T, D]{}
}

// Single returns a set holding one member.
func Single[T comparable, D Domain[T]](v T) Set[T, D] {
	var d D
	return Set[T, D]{bits: 1 << uint(d.Ordinal(v))}
}

// Double returns a set holding two members. Repeating a member is an
// error.
func Double[T comparable, D Domain[T]](v1, v2 T) (Set[T, D], error) {
	return New[T, D](v1, v2)
}

// Triple returns a set holding three members. Repeating a member is an
// error.
func Triple[T comparable, D Domain[T]](v1, v2, v3 T) (Set[T, D], error) {
	return New[T, D](v1, v2, v3)
}

// Insert adds v to the set. It fails with ErrFull when the whole domain is
// already present and with ErrDuplicate when v is already a member; a
// failed insert leaves the set unchanged.
func (s *Set[T, D]) Insert(v T) error {
	var d D
	if s.Len() == d.Size() {
		return ErrFull
	}
	b := uint64(1) << uint(d.Ordinal(v))
	if s.bits&b != 0 {
		return ErrDuplicate
	}
	s.bits |= b
	return nil
}

// Remove deletes v from the set and reports whether it was a member.
func (s *Set[T, D]) Remove(v T) bool {
	var d D
	b := uint64(1) << uint(d.Ordinal(v))
	if s.bits&b == 0 {
		return false
	}
	s.bits &^= b
	return true
}

// Take removes and returns the member equal to v, if present.
func (s *Set[T, D]) Take(v T) (T, bool) {
	if !s.Remove(v) {
		var zero T
		return zero, false
	}
	return v, true
}

// Clear removes all members.
func (s *Set[T, D]) Clear() { s.bits = 0 }

// Contains reports whether v is a member.
func (s Set[T, D]) Contains(v T) bool {
	var d D
	return s.bits&(1<<uint(d.Ordinal(v))) != 0
}

// Len returns the number of members.
func (s Set[T, D]) Len() int { return bits.OnesCount64(s.bits) }

// IsEmpty reports whether the set has no members.
func (s Set[T, D]) IsEmpty() bool { return s.bits == 0 }

// Union returns the members present in either set.
func (s Set[T, D]) Union(other Set[T, D]) Set[T, D] {
	return Set[T, D]{bits: s.bits | other.bits}
}

// Intersection returns the members present in both sets.
func (s Set[T, D]) Intersection(other Set[T, D]) Set[T, D] {
	return Set[T, D]{bits: s.bits & other.bits}
}

// Difference returns the members present in s but not in other.
func (s Set[T, D]) Difference(other Set[T, D]) Set[T, D] {
	return Set[T, D]{bits: s.bits &^ other.bits}
}

// SymmetricDifference returns the members present in exactly one of the
// sets.
func (s Set[T, D]) SymmetricDifference(other Set[T, D]) Set[T, D] {
	return Set[T, D]{bits: s.bits ^ other.bits}
}

// IsSubset reports whether every member of s is in other.
func (s Set[T, D]) IsSubset(other Set[T, D]) bool {
	return s.bits&^other.bits == 0
}

// IsSuperset reports whether every member of other is in s.
func (s Set[T, D]) IsSuperset(other Set[T, D]) bool {
	return other.IsSubset(s)
}

// IsDisjoint reports whether the sets share no members.
func (s Set[T, D]) IsDisjoint(other Set[T, D]) bool {
	return s.bits&other.bits == 0
}

// Members returns the members in the domain's declared order.
func (s Set[T, D]) Members() []T {
	var d D
	out := make([]T, 0, s.Len())
	for i := 0; i < d.Size(); i++ {
		if s.bits&(1<<uint(i)) != 0 {
			out = append(out, d.FromOrdinal(i))
		}
	}
	return out
}

// Bits exposes the member bitmask. Useful for hashing; two sets are equal
// iff their masks are equal.
func (s Set[T, D]) Bits() uint64 { return s.bits }
