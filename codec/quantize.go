package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/artie-nazarov/CULgebra/matrix"
)

// Float is the element subset eligible for lossy quantization.
type Float interface {
	float32 | float64
}

// Quantize maps a float value inside [min, max] onto a single byte.
func Quantize[T Float](value T, min T, max T) (valueQuantized uint8) {
	if value < min {
		value = min
	} else if value > max {
		value = max
	}
	// Normalize the value to the range [0, 1]
	normalized := (value - min) / (max - min)
	// Scale to [0, 255] and convert to uint8
	valueQuantized = uint8(normalized * 255)
	return valueQuantized
}

// Dequantize maps a quantized byte back into [min, max].
func Dequantize[T Float](valueQuantized uint8, min T, max T) (value T) {
	// Normalize the uint8 value to the range [0, 1]
	normalized := T(valueQuantized) / 255.0
	// Scale back to the original range [min, max]
	value = min + normalized*(max-min)
	return value
}

// MarshalQuantized encodes a float matrix lossily at one byte per element.
// The observed min and max are stored as a float32 pair after the header so
// decoding needs no out-of-band state. Worst-case error per element is
// (max-min)/255.
func MarshalQuantized[T Float](m *matrix.Matrix[T]) []byte {
	flat := m.Flat()
	min, max := valueRange(flat)
	raw := make([]byte, 0, 24+len(flat))
	raw = appendHeader(raw, magicQuantized, dtypeOf[T](), m.Shape())
	raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(float32(min)))
	raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(float32(max)))
	for _, value := range flat {
		raw = append(raw, Quantize(value, min, max))
	}
	return compress(raw)
}

// UnmarshalQuantized decodes a MarshalQuantized payload.
func UnmarshalQuantized[T Float](payload []byte) (*matrix.Matrix[T], error) {
	raw, err := decompress(payload)
	if err != nil {
		return nil, errors.Join(ErrCodec, err)
	}
	sizes, rest, err := parseHeader(raw, magicQuantized, dtypeOf[T]())
	if err != nil {
		return nil, err
	}
	if len(rest) < 8 {
		return nil, fmt.Errorf("%w: truncated quantization range", ErrCodec)
	}
	min := T(math.Float32frombits(binary.LittleEndian.Uint32(rest)))
	max := T(math.Float32frombits(binary.LittleEndian.Uint32(rest[4:])))
	rest = rest[8:]
	flat := make([]T, len(rest))
	for i, value := range rest {
		flat[i] = Dequantize(value, min, max)
	}
	m, err := matrix.FromFlat(flat, sizes...)
	if err != nil {
		return nil, errors.Join(ErrCodec, err)
	}
	return m, nil
}

// valueRange scans for the observed min and max. An empty or constant matrix
// widens the range by one so the quantization step stays non-zero.
func valueRange[T Float](values []T) (min, max T) {
	if len(values) == 0 {
		return 0, 1
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		max = min + 1
	}
	return min, max
}
