package q32

import "math"
import "encoding/binary"

import "golang.org/x/sys/cpu"

// The byte order of the host, for when raw values have to be
// exchanged with code that reads them straight from memory.
var NativeOrder binary.ByteOrder = nativeOrder()

func nativeOrder() binary.ByteOrder {
	if cpu.IsBigEndian { return binary.BigEndian }
	return binary.LittleEndian
}

// Returns the raw 64 bit pattern of the value.
func (self Fixed) Bits() uint64 { return uint64(self) }

// Creates a Fixed from its raw 64 bit pattern: integer
// part in bits 63..32, fraction in bits 31..0.
func FromBits(raw uint64) Fixed { return Fixed(raw) }

// Appends the 8 bytes of the raw value to buf, using the given byte order.
func (self Fixed) AppendBytes(buf []byte, order binary.ByteOrder) []byte {
	var raw [8]byte
	order.PutUint64(raw[:], uint64(self))
	return append(buf, raw[:]...)
}

// Reads a raw value from the first 8 bytes of buf. Panics if
// buf is shorter than that.
func FromBytes(buf []byte, order binary.ByteOrder) Fixed {
	return Fixed(order.Uint64(buf))
}

// Layout of the two 32 bit words of a stored float64. Some old
// targets (e.g. ARM with the FPA unit) store doubles with the
// most significant word first even on little endian memory.
type WordLayout uint8
const (
	WordsInOrder WordLayout = iota // words follow the byte order
	WordsSwapped                    // the 32 bit halves are exchanged
)

func (self WordLayout) String() string {
	switch self {
	case WordsInOrder: return "WordsInOrder"
	case WordsSwapped: return "WordsSwapped"
	default:
		return "UnknownWordLayout"
	}
}

func (self WordLayout) arrange(raw uint64) uint64 {
	if self == WordsSwapped { return raw << 32 | raw >> 32 }
	return raw
}

// Decodes a float64 stored in the first 8 bytes of buf and converts
// it with [FromFloat64](). Panics if buf is shorter than that.
func FromFloat64Bytes(buf []byte, order binary.ByteOrder, layout WordLayout) Fixed {
	raw := layout.arrange(order.Uint64(buf))
	return FromFloat64(math.Float64frombits(raw))
}

// Converts the value with [Fixed.ToFloat64]() and appends the 8 bytes
// of the result to buf, using the given byte order and word layout.
func (self Fixed) AppendFloat64Bytes(buf []byte, order binary.ByteOrder, layout WordLayout) []byte {
	var raw [8]byte
	order.PutUint64(raw[:], layout.arrange(math.Float64bits(self.ToFloat64())))
	return append(buf, raw[:]...)
}
