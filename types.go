// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dex

// NoIndex is the reserved sentinel meaning "absent" for nullable index
// fields (superclass_idx, source_file_idx, and similar).
const NoIndex = 0xFFFFFFFF

// Type is a type descriptor string, e.g. "Ljava/lang/Object;", "I", "[B".
type Type string

// TypeList is an ordered sequence of Types, keyed by the file offset of
// its type_list item because protos and class_defs reference it by
// offset rather than index.
type TypeList []Type

// Proto is a method prototype.
type Proto struct {
	Shorty     string
	ReturnType Type
	Parameters TypeList
}

// Field identifies a field of a class.
type Field struct {
	Class Type
	Type  Type
	Name  string
}

// Method identifies a method of a class. InsnsOff is filled in later,
// while walking encoded_method entries, and is 0 when the method has no
// code (abstract or native).
type Method struct {
	Class    Type
	Proto    *Proto
	Name     string
	InsnsOff uint32
}

// MethodHandleType enumerates the nine kinds of method handle.
type MethodHandleType uint16

// Method handle kinds; 0x00-0x03 reference a Field, 0x04-0x08 a Method.
const (
	MethodHandleStaticPut         MethodHandleType = 0x00
	MethodHandleStaticGet         MethodHandleType = 0x01
	MethodHandleInstancePut       MethodHandleType = 0x02
	MethodHandleInstanceGet       MethodHandleType = 0x03
	MethodHandleInvokeStatic      MethodHandleType = 0x04
	MethodHandleInvokeInstance    MethodHandleType = 0x05
	MethodHandleInvokeConstructor MethodHandleType = 0x06
	MethodHandleInvokeDirect      MethodHandleType = 0x07
	MethodHandleInvokeInterface   MethodHandleType = 0x08
)

// MethodHandle binds a handle kind to either a Field or a Method,
// depending on the kind (see MethodHandleType).
type MethodHandle struct {
	Kind   MethodHandleType
	Field  *Field
	Method *Method
}

// CallSite is resolved from a call_site_id_item's encoded_array; it is
// accepted and carried but not further interpreted by the core.
type CallSite struct {
	Values EncodedArray
}

// ValueType tags the 18 variants of EncodedValue.
type ValueType byte

// The encoded_value tag bytes.
const (
	ValueByte         ValueType = 0x00
	ValueShort        ValueType = 0x02
	ValueChar         ValueType = 0x03
	ValueInt          ValueType = 0x04
	ValueLong         ValueType = 0x06
	ValueFloat        ValueType = 0x10
	ValueDouble       ValueType = 0x11
	ValueMethodType   ValueType = 0x15
	ValueMethodHandle ValueType = 0x16
	ValueString       ValueType = 0x17
	ValueType_        ValueType = 0x18
	ValueField        ValueType = 0x19
	ValueMethod       ValueType = 0x1a
	ValueEnum         ValueType = 0x1b
	ValueArray        ValueType = 0x1c
	ValueAnnotation   ValueType = 0x1d
	ValueNull         ValueType = 0x1e
	ValueBoolean      ValueType = 0x1f
)

// EncodedValue is a tagged union over the 18 encoded_value kinds. Exactly
// one of the payload fields is meaningful, selected by Tag.
type EncodedValue struct {
	Tag ValueType

	Int   int64
	Float float64
	Bool  bool

	Str          string
	TypeVal      Type
	FieldVal     *Field
	MethodVal    *Method
	ProtoVal     *Proto
	MethodHandle *MethodHandle
	Array        EncodedArray
	Annotation   *Annotation
}

// EncodedArray is an ordered sequence of EncodedValue.
type EncodedArray []EncodedValue

// AnnotationElement is one name/value pair of an encoded annotation.
type AnnotationElement struct {
	Name  string
	Value EncodedValue
}

// Annotation is an encoded_annotation: a type plus name/value elements.
// Full annotation-directory resolution is out of scope (spec §1); this
// is only reachable via an ENCODED_ANNOTATION-tagged EncodedValue.
type Annotation struct {
	Type     Type
	Elements []AnnotationElement
}

// EncodedField pairs a Field with its access flags (field context).
type EncodedField struct {
	Field       Field
	AccessFlags AccessFlags
}

// EncodedMethod pairs a Method with its access flags (method context)
// and, if it has a body, its CodeItem.
type EncodedMethod struct {
	Method      Method
	AccessFlags AccessFlags
	Code        *CodeItem
}

// TryItem describes one try block's range and its resolved handler.
type TryItem struct {
	StartAddr uint32
	InsnCount uint16
	Handler   EncodedCatchHandler
}

// CatchHandlerEntry is one typed handler inside an EncodedCatchHandler.
type CatchHandlerEntry struct {
	Type Type
	Addr uint32
}

// EncodedCatchHandler is a list of typed handlers plus an optional
// catch-all. HasCatchAll distinguishes "no catch-all" from a catch-all
// at address 0.
type EncodedCatchHandler struct {
	Handlers    []CatchHandlerEntry
	HasCatchAll bool
	CatchAll    uint32
}

// CodeItem is a method body: register counts, the raw instruction
// stream in its on-disk byte order (not endian-swapped), and exception
// handling ranges.
type CodeItem struct {
	RegistersSize uint16
	InsSize       uint16
	OutsSize      uint16
	DebugInfoOff  uint32
	InsnsOff      uint32
	Insns         []byte // little-endian 16-bit code units, as on disk
	Tries         []TryItem
}

// ClassData groups the four ordered method/field lists of a class_def.
type ClassData struct {
	StaticFields   []EncodedField
	InstanceFields []EncodedField
	DirectMethods  []EncodedMethod
	VirtualMethods []EncodedMethod
}

// ClassDef is one class_def_item, fully cross-linked.
type ClassDef struct {
	Class        Type
	AccessFlags  AccessFlags
	Superclass   Type // empty if absent
	HasSuper     bool
	Interfaces   TypeList
	SourceFile   string
	HasSource    bool
	Data         *ClassData
	StaticValues EncodedArray
}

// Pseudo-instruction payload types (PackedSwitchPayload, SparseSwitchPayload,
// FillArrayDataPayload, PseudoInstruction) live in package smali, since they
// belong to the bytecode/disassembly domain (components F/G/H) rather than
// the container data model; see smali/pseudo.go.
