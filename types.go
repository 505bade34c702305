package typerand

// TypeKind identifies a class in the storage engine's type algebra. The
// enumeration is closed: random kind draws range over exactly these values,
// in declaration order.
type TypeKind int

const (
	// KindNone marks the absence of an enclosing kind. It is only meaningful
	// as the parent-context argument to Generator.Type and never appears on a
	// generated descriptor.
	KindNone TypeKind = iota - 1

	KindInteger
	KindFloat
	KindTime
	KindString
	KindBitfield
	KindOpaque
	KindCompound
	KindReference
	KindEnum
	KindVarLen
	KindArray

	numKinds // Size of the closed enumeration.
)

func (k TypeKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	case KindString:
		return "string"
	case KindBitfield:
		return "bitfield"
	case KindOpaque:
		return "opaque"
	case KindCompound:
		return "compound"
	case KindReference:
		return "reference"
	case KindEnum:
		return "enum"
	case KindVarLen:
		return "vlen"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// ByteOrder dictates the byte ordering of a scalar numeric type.
type ByteOrder int

const (
	OrderBigEndian    ByteOrder = iota // Most significant byte first.
	OrderLittleEndian                  // Least significant byte first.
)

func (o ByteOrder) String() string {
	if o == OrderLittleEndian {
		return "LE"
	}
	return "BE"
}

// StringPad dictates how a string type treats its trailing bytes.
type StringPad int

const (
	PadNullTerm StringPad = iota // Null-terminated (variable-length strings).
	PadNullPad                   // Null-padded to the fixed length.
)

// Charset identifies the character set of a string type. Only ASCII is
// produced today; the value exists so descriptors stay self-describing if
// more sets appear later.
type Charset int

const (
	CharsetASCII Charset = iota
)
