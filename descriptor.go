package typerand

// Descriptor is a constructed type instance. Descriptors form a strict tree:
// a compound or array exclusively owns its nested member/element descriptors,
// and releasing the parent releases all children transitively.
type Descriptor interface {
	// Kind reports the type class of this descriptor.
	Kind() TypeKind
	// Size reports the in-memory byte footprint of one value of this type.
	// Variable-length payloads (variable strings, references) count as a
	// pointer-sized handle.
	Size() uint64
	// Release frees the descriptor and everything it owns. Releasing an
	// already-released or nil descriptor is a no-op.
	Release()
	// Equal reports structural equality with another descriptor.
	Equal(other Descriptor) bool
}

// handleSize is the byte footprint of payloads stored out-of-line: variable
// length string data and reference targets.
const handleSize = 8

// IntegerType is a fixed-width two's-complement integer type.
type IntegerType struct {
	Width  int // Bits: 8, 16, 32 or 64.
	Signed bool
	Order  ByteOrder
}

func (t *IntegerType) Kind() TypeKind { return KindInteger }
func (t *IntegerType) Size() uint64 {
	if t == nil {
		return 0
	}
	return uint64(t.Width) / 8
}
func (t *IntegerType) Release() {}

// Clone returns an independent copy, the way predefined catalog entries are
// handed out.
func (t *IntegerType) Clone() *IntegerType {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (t *IntegerType) Equal(other Descriptor) bool {
	o, ok := other.(*IntegerType)
	if !ok || t == nil || o == nil {
		return false
	}
	return t.Width == o.Width && t.Signed == o.Signed && t.Order == o.Order
}

// FloatType is an IEEE 754 floating-point type.
type FloatType struct {
	Width int // Bits: 32 or 64.
	Order ByteOrder
}

func (t *FloatType) Kind() TypeKind { return KindFloat }
func (t *FloatType) Size() uint64 {
	if t == nil {
		return 0
	}
	return uint64(t.Width) / 8
}
func (t *FloatType) Release() {}

func (t *FloatType) Clone() *FloatType {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (t *FloatType) Equal(other Descriptor) bool {
	o, ok := other.(*FloatType)
	if !ok || t == nil || o == nil {
		return false
	}
	return t.Width == o.Width && t.Order == o.Order
}

// StringType is an ASCII string type, either fixed-length and null-padded or
// variable-length and null-terminated. Padding mode and character set are
// fixed policy, not free attributes: the constructors below set them.
type StringType struct {
	VariableLength bool
	Length         uint64 // Fixed byte length; meaningless when VariableLength.
	Pad            StringPad
	Charset        Charset
}

// FixedString returns a fixed-length, null-padded ASCII string type. A zero
// length is allowed.
func FixedString(length uint64) *StringType {
	return &StringType{Length: length, Pad: PadNullPad, Charset: CharsetASCII}
}

// VariableString returns a variable-length, null-terminated ASCII string type.
func VariableString() *StringType {
	return &StringType{VariableLength: true, Pad: PadNullTerm, Charset: CharsetASCII}
}

func (t *StringType) Kind() TypeKind { return KindString }
func (t *StringType) Size() uint64 {
	if t == nil {
		return 0
	}
	if t.VariableLength {
		return handleSize
	}
	return t.Length
}
func (t *StringType) Release() {}

func (t *StringType) Equal(other Descriptor) bool {
	o, ok := other.(*StringType)
	if !ok || t == nil || o == nil {
		return false
	}
	if t.VariableLength != o.VariableLength || t.Pad != o.Pad || t.Charset != o.Charset {
		return false
	}
	return t.VariableLength || t.Length == o.Length
}

// ReferenceType points at another stored object (Region == false) or at a
// region within one (Region == true). Generation only ever emits object
// references; the region variant exists so decoded fixtures can still
// describe one.
type ReferenceType struct {
	Region bool
}

// ObjectReference returns the object-reference type.
func ObjectReference() *ReferenceType { return &ReferenceType{} }

func (t *ReferenceType) Kind() TypeKind { return KindReference }
func (t *ReferenceType) Size() uint64 {
	if t == nil {
		return 0
	}
	return handleSize
}
func (t *ReferenceType) Release() {}

func (t *ReferenceType) Equal(other Descriptor) bool {
	o, ok := other.(*ReferenceType)
	if !ok || t == nil || o == nil {
		return false
	}
	return t.Region == o.Region
}
