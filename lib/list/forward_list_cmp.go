package list

import (
	"github.com/benz9527/fwdlist/lib/infra"
)

// Relational functions compare whole lists element by element.
// A nil list compares as an empty one.
//
// Less, LessEqual, Greater and GreaterEqual are derived from the element
// less-than and equality:
//
//	a <= b  is  a < b || a == b
//	a >  b  is  !(a <= b)
//	a >= b  is  !(a < b)
//
// They are only consistent with each other when the element order is a
// strict weak order. NaN float elements break that. Compare and CompareFunc
// use a single three-way comparison instead.

func Equal[T comparable](a, b *ForwardList[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b *ForwardList[T]) bool {
	return !Equal(a, b)
}

func Less[T infra.OrderedKey](a, b *ForwardList[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

func LessEqual[T infra.OrderedKey](a, b *ForwardList[T]) bool {
	return Less(a, b) || Equal(a, b)
}

func Greater[T infra.OrderedKey](a, b *ForwardList[T]) bool {
	return !LessEqual(a, b)
}

func GreaterEqual[T infra.OrderedKey](a, b *ForwardList[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or 1 as a orders before, equal to or after b.
func Compare[T infra.OrderedKey](a, b *ForwardList[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		return int(infra.OrderedKeyCompare(x, y))
	})
}

// EqualFunc reports whether a and b have the same length and eq holds
// for every pair of elements at the same position.
func EqualFunc[T any](a, b *ForwardList[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	return equalRange[T](a.CBegin(), a.CEnd(), b.CBegin(), b.CEnd(), eq)
}

// LessFunc is the lexicographical comparison by less. A strict prefix
// orders before the longer list.
func LessFunc[T any](a, b *ForwardList[T], less func(x, y T) bool) bool {
	return lexicographicalLess[T](a.CBegin(), a.CEnd(), b.CBegin(), b.CEnd(), less)
}

// LessEqualFunc needs eq as well, as in LessEqual.
func LessEqualFunc[T any](a, b *ForwardList[T], less, eq func(x, y T) bool) bool {
	return LessFunc(a, b, less) || EqualFunc(a, b, eq)
}

func GreaterFunc[T any](a, b *ForwardList[T], less, eq func(x, y T) bool) bool {
	return !LessEqualFunc(a, b, less, eq)
}

func GreaterEqualFunc[T any](a, b *ForwardList[T], less func(x, y T) bool) bool {
	return !LessFunc(a, b, less)
}

func CompareFunc[T any](a, b *ForwardList[T], cmp func(x, y T) int) int {
	if a == b {
		return 0
	}
	return lexicographicalCompare[T](a.CBegin(), a.CEnd(), b.CBegin(), b.CEnd(), cmp)
}
