package ir

import (
	"fmt"
	"strings"
)

// TypeKind categorizes a Type descriptor.
type TypeKind int

const (
	// TypeInteger is a fixed-width builtin integer. Width 1 is the
	// boolean type.
	TypeInteger TypeKind = iota

	// TypeRawPointer is the single opaque builtin pointer type.
	TypeRawPointer

	// TypeAddress is the address of a memory location holding an element
	// type ("$*T" in the printed form).
	TypeAddress

	// TypeRef is a managed (reference-counted) class reference.
	TypeRef

	// TypeObjectPointer is the opaque builtin object-pointer type.
	TypeObjectPointer

	// TypeEnum is a tagged union identified by name with a fixed case set.
	TypeEnum

	// TypeTuple is an unnamed aggregate of element types.
	TypeTuple

	// TypeStruct is a named aggregate of field types.
	TypeStruct
)

// Type is an identity-compared type descriptor.
//
// Two *Type pointers denote the same IR type iff they are equal with ==.
// Equality is therefore reflexive, symmetric, and transitive by
// construction, and no structural comparison exists anywhere in the
// model. Descriptors are immutable once minted.
type Type struct {
	kind   TypeKind
	name   string
	width  int
	elem   *Type
	fields []*Type
	cases  []string
}

// Kind returns the type's kind tag.
func (t *Type) Kind() TypeKind { return t.kind }

// Width returns the bit width of an integer type, and 0 otherwise.
func (t *Type) Width() int { return t.width }

// Elem returns the element type of an address type, and nil otherwise.
func (t *Type) Elem() *Type { return t.elem }

// NumFields returns the declared field count of a tuple or struct type.
func (t *Type) NumFields() int { return len(t.fields) }

// Field returns the i-th field type of a tuple or struct type.
func (t *Type) Field(i int) *Type { return t.fields[i] }

// Cases returns the case tags of an enum type.
func (t *Type) Cases() []string { return t.cases }

// String renders the descriptor for diagnostics and the printer.
func (t *Type) String() string {
	switch t.kind {
	case TypeInteger:
		return fmt.Sprintf("i%d", t.width)
	case TypeRawPointer:
		return "rawptr"
	case TypeAddress:
		return "*" + t.elem.String()
	case TypeRef:
		return t.name
	case TypeObjectPointer:
		return "objptr"
	case TypeEnum:
		return t.name
	case TypeTuple:
		elems := make([]string, len(t.fields))
		for i, f := range t.fields {
			elems[i] = f.String()
		}
		return "(" + strings.Join(elems, ", ") + ")"
	case TypeStruct:
		return t.name
	default:
		return fmt.Sprintf("type(%d)", int(t.kind))
	}
}

// TypeContext mints and owns type descriptors.
//
// Integer types are interned by width, and the raw-pointer and
// object-pointer singletons are interned per context, so repeated lookups
// yield the identical pointer. All other constructors mint a fresh
// identity on every call: two AddressType(elem) calls produce two
// distinct types even for the same element.
//
// The context is passed explicitly to whoever needs a canonical type
// (the boolean-literal simplification needs IntType(1)); there is no
// package-level default.
type TypeContext struct {
	ints   map[int]*Type
	rawPtr *Type
	objPtr *Type
}

// NewTypeContext creates an empty type context.
func NewTypeContext() *TypeContext {
	return &TypeContext{ints: make(map[int]*Type)}
}

// IntType returns the canonical integer type of the given bit width.
// IntType(1) is the boolean type.
func (c *TypeContext) IntType(width int) *Type {
	if t, ok := c.ints[width]; ok {
		return t
	}
	t := &Type{kind: TypeInteger, width: width}
	c.ints[width] = t
	return t
}

// BoolType returns the canonical width-1 integer type.
func (c *TypeContext) BoolType() *Type { return c.IntType(1) }

// RawPointerType returns the context's single raw-pointer type.
func (c *TypeContext) RawPointerType() *Type {
	if c.rawPtr == nil {
		c.rawPtr = &Type{kind: TypeRawPointer}
	}
	return c.rawPtr
}

// ObjectPointerType returns the context's single object-pointer type.
func (c *TypeContext) ObjectPointerType() *Type {
	if c.objPtr == nil {
		c.objPtr = &Type{kind: TypeObjectPointer}
	}
	return c.objPtr
}

// AddressType mints an address-of-elem type with a fresh identity.
func (c *TypeContext) AddressType(elem *Type) *Type {
	return &Type{kind: TypeAddress, elem: elem}
}

// RefType mints a managed reference type with a fresh identity.
func (c *TypeContext) RefType(name string) *Type {
	return &Type{kind: TypeRef, name: name}
}

// EnumType mints an enum type with a fresh identity.
func (c *TypeContext) EnumType(name string, cases ...string) *Type {
	return &Type{kind: TypeEnum, name: name, cases: cases}
}

// TupleType mints a tuple type with a fresh identity.
func (c *TypeContext) TupleType(elems ...*Type) *Type {
	return &Type{kind: TypeTuple, fields: elems}
}

// StructType mints a named struct type with a fresh identity.
func (c *TypeContext) StructType(name string, fields ...*Type) *Type {
	return &Type{kind: TypeStruct, name: name, fields: fields}
}
