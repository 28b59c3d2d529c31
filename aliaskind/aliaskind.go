// Package aliaskind lets generic code ask whether a type was produced by
// aliasgen and whether two alias types share a name tag.
//
// Alias identity is enforced by the Go type system long before these
// predicates run: every generated alias is a distinct defined type, so an
// expression mixing two aliases does not compile. The predicates exist for
// generic code that wants the same three facts the generator works from: is
// this type an alias at all, is it the same alias as another, is it a
// different one. They resolve against constant tags and carry no state.
package aliaskind

import "reflect"

// Tag is the name tag attached to every generated alias type. Name is
// globally unique per alias declaration and is the sole identity criterion.
// Underlying records the representation type for diagnostics only; it plays
// no part in identity.
type Tag struct {
	Name       string
	Underlying string
}

// Alias is implemented by every generated alias type. AliasTag returns a
// constant and is declared on the value receiver, so both the alias type and
// a pointer to it satisfy the interface.
type Alias interface {
	AliasTag() Tag
}

// TagOf returns the tag of the alias type A. A pointer-to-alias type is
// accepted too: its zero value is a nil pointer, so the tag is read from a
// zero value of the element type instead of calling through the nil pointer.
// The non-pointer path stays allocation-free.
func TagOf[A Alias]() Tag {
	var zero A
	if t := reflect.TypeOf(zero); t != nil && t.Kind() == reflect.Pointer {
		if elem, ok := reflect.New(t.Elem()).Elem().Interface().(Alias); ok {
			return elem.AliasTag()
		}
	}
	return zero.AliasTag()
}

// Is reports whether A is a generated alias type of any name.
func Is[A any]() bool {
	var zero A
	_, ok := any(zero).(Alias)
	return ok
}

// Same reports whether A and B are aliases carrying the identical name tag.
func Same[A, B Alias]() bool {
	return TagOf[A]().Name == TagOf[B]().Name
}

// Different reports whether A and B are aliases with differing name tags.
func Different[A, B Alias]() bool {
	return TagOf[A]().Name != TagOf[B]().Name
}

// Of returns the tag of v when v is, or points to, a generated alias value.
func Of(v any) (Tag, bool) {
	a, ok := v.(Alias)
	if !ok {
		return Tag{}, false
	}
	return a.AliasTag(), true
}
