// Package codec serializes matrices to a compact binary form: a small
// header (kind tag, element kind, shape) followed by little-endian elements,
// with the whole frame zstd-compressed. A lossy 8-bit quantized form is
// available for float matrices where space matters more than precision.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/artie-nazarov/CULgebra/matrix"
)

// ErrCodec is the sentinel wrapped by every decode failure: bad magic,
// element-kind mismatch, or truncated payload.
var ErrCodec = errors.New("codec: malformed payload")

const (
	magicDense     = "CULM"
	magicQuantized = "CULQ"
	version        = 1
)

// DType tags the element kind inside an encoded payload.
type DType uint8

const (
	DTypeInvalid DType = iota
	DTypeInt32
	DTypeUint32
	DTypeFloat32
	DTypeFloat64
	DTypeBool
)

func (d DType) String() string {
	switch d {
	case DTypeInt32:
		return "int32"
	case DTypeUint32:
		return "uint32"
	case DTypeFloat32:
		return "float32"
	case DTypeFloat64:
		return "float64"
	case DTypeBool:
		return "boolean"
	default:
		return "invalid"
	}
}

// DTypeOf maps the generic element kind to its payload tag.
func DTypeOf[T matrix.Element]() DType {
	return dtypeOf[T]()
}

// dtypeOf maps the generic element kind to its payload tag.
func dtypeOf[T matrix.Element]() DType {
	var zero T
	switch any(zero).(type) {
	case int32:
		return DTypeInt32
	case uint32:
		return DTypeUint32
	case float32:
		return DTypeFloat32
	case float64:
		return DTypeFloat64
	case bool:
		return DTypeBool
	}
	return DTypeInvalid
}

// header is magic(4) + version(1) + dtype(1) + rank(1) + rank*4 size bytes.
func appendHeader(dst []byte, magic string, dtype DType, shape matrix.Shape) []byte {
	dst = append(dst, magic...)
	dst = append(dst, version, byte(dtype), byte(shape.Rank()))
	for _, size := range shape.Sizes() {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(size))
	}
	return dst
}

func parseHeader(raw []byte, magic string, dtype DType) (sizes []int, rest []byte, err error) {
	if len(raw) < len(magic)+3 {
		return nil, nil, fmt.Errorf("%w: truncated header", ErrCodec)
	}
	if string(raw[:len(magic)]) != magic {
		return nil, nil, fmt.Errorf("%w: bad magic", ErrCodec)
	}
	raw = raw[len(magic):]
	if raw[0] != version {
		return nil, nil, fmt.Errorf("%w: unsupported version %d", ErrCodec, raw[0])
	}
	if DType(raw[1]) != dtype {
		return nil, nil, fmt.Errorf("%w: payload holds %s, requested %s", ErrCodec, DType(raw[1]), dtype)
	}
	rank := int(raw[2])
	if rank < 1 || rank > matrix.MaxRank {
		return nil, nil, fmt.Errorf("%w: rank %d", ErrCodec, rank)
	}
	raw = raw[3:]
	if len(raw) < rank*4 {
		return nil, nil, fmt.Errorf("%w: truncated shape", ErrCodec)
	}
	sizes = make([]int, rank)
	for i := range sizes {
		sizes[i] = int(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return sizes, raw[rank*4:], nil
}

// Marshal encodes a matrix losslessly and compresses the frame.
func Marshal[T matrix.Element](m *matrix.Matrix[T]) []byte {
	flat := m.Flat()
	raw := make([]byte, 0, 16+len(flat)*8)
	raw = appendHeader(raw, magicDense, dtypeOf[T](), m.Shape())
	for _, v := range flat {
		raw = appendElement(raw, v)
	}
	return compress(raw)
}

// Unmarshal decodes a Marshal payload back into a matrix. The element kind
// requested must match the one recorded in the payload.
func Unmarshal[T matrix.Element](payload []byte) (*matrix.Matrix[T], error) {
	raw, err := decompress(payload)
	if err != nil {
		return nil, errors.Join(ErrCodec, err)
	}
	sizes, rest, err := parseHeader(raw, magicDense, dtypeOf[T]())
	if err != nil {
		return nil, err
	}
	width := elementWidth[T]()
	count := len(rest) / width
	if len(rest) != count*width {
		return nil, fmt.Errorf("%w: truncated elements", ErrCodec)
	}
	flat := make([]T, count)
	for i := range flat {
		flat[i] = readElement[T](rest[i*width:])
	}
	m, err := matrix.FromFlat(flat, sizes...)
	if err != nil {
		return nil, errors.Join(ErrCodec, err)
	}
	return m, nil
}

func elementWidth[T matrix.Element]() int {
	var zero T
	switch any(zero).(type) {
	case float64:
		return 8
	case bool:
		return 1
	default:
		return 4
	}
}

func appendElement[T matrix.Element](dst []byte, v T) []byte {
	switch value := any(v).(type) {
	case int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(value))
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, value)
	case float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(value))
	case float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(value))
	case bool:
		if value {
			return append(dst, 1)
		}
		return append(dst, 0)
	}
	return dst
}

func readElement[T matrix.Element](src []byte) T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(int32(binary.LittleEndian.Uint32(src))).(T)
	case uint32:
		return any(binary.LittleEndian.Uint32(src)).(T)
	case float32:
		return any(math.Float32frombits(binary.LittleEndian.Uint32(src))).(T)
	case float64:
		return any(math.Float64frombits(binary.LittleEndian.Uint64(src))).(T)
	case bool:
		return any(src[0] != 0).(T)
	}
	return zero
}
