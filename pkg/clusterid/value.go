package clusterid

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"github.com/mr-tron/base58"
)

const (
	// FormatVersion is the only layout version this package reads and writes.
	FormatVersion = 1

	// Size is the length of an identifier in bytes.
	Size = 16

	nonceOffset     = 0
	nonceSize       = 5
	typeIDOffset    = 5
	detailsOffset   = 7
	timestampOffset = 8

	environmentBits = 2
	dataCentreBits  = 3
	versionBits     = 3

	dataCentreShift = environmentBits
	versionShift    = environmentBits + dataCentreBits

	environmentMask = 1<<environmentBits - 1                     // 0x03
	dataCentreMask  = (1<<dataCentreBits - 1) << dataCentreShift // 0x1c
	versionMask     = (1<<versionBits - 1) << versionShift       // 0xe0

	// Largest codes that fit each field.
	MaxEnvironment = 1<<environmentBits - 1
	MaxDataCentre  = 1<<dataCentreBits - 1
	MaxTypeID      = 1<<16 - 1
)

// Value is an immutable identifier. Domain fields are decoded through the
// bound Decoder on first access and memoized.
//
// A Value must not be copied after first use.
type Value[DC, Env, Type any] struct {
	raw [Size]byte
	dec Decoder[DC, Env, Type]

	once        sync.Once
	dataCentre  DC
	environment Env
	typeID      Type
}

// NewValue validates b and wraps a copy of it. A nil dec decodes every field
// as its zero value.
func NewValue[DC, Env, Type any](b []byte, dec Decoder[DC, Env, Type]) (*Value[DC, Env, Type], error) {
	if len(b) != Size {
		return nil, &InvalidByteLengthError{Length: len(b)}
	}
	if v := versionOf(b[detailsOffset]); v != FormatVersion {
		return nil, &InvalidVersionError{Expected: FormatVersion, Received: v}
	}
	if dec == nil {
		dec = NullDecoder[DC, Env, Type]{}
	}

	val := &Value[DC, Env, Type]{dec: dec}
	copy(val.raw[:], b)
	return val, nil
}

func versionOf(details byte) uint8 {
	return (details & versionMask) >> versionShift
}

// Bytes returns a copy of the 16 raw bytes.
func (v *Value[DC, Env, Type]) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, v.raw[:])
	return out
}

// Version is always FormatVersion; NewValue rejects anything else.
func (v *Value[DC, Env, Type]) Version() uint8 {
	return FormatVersion
}

// Nonce returns the 40-bit random nonce.
func (v *Value[DC, Env, Type]) Nonce() uint64 {
	var buf [8]byte
	copy(buf[:], v.raw[nonceOffset:nonceOffset+nonceSize])
	return binary.LittleEndian.Uint64(buf[:])
}

// RawTypeID returns the type id code without decoding it.
func (v *Value[DC, Env, Type]) RawTypeID() uint16 {
	return binary.LittleEndian.Uint16(v.raw[typeIDOffset:detailsOffset])
}

// RawDataCentre returns the 3-bit data centre code without decoding it.
func (v *Value[DC, Env, Type]) RawDataCentre() uint8 {
	return (v.raw[detailsOffset] & dataCentreMask) >> dataCentreShift
}

// RawEnvironment returns the 2-bit environment code without decoding it.
func (v *Value[DC, Env, Type]) RawEnvironment() uint8 {
	return v.raw[detailsOffset] & environmentMask
}

// TypeID returns the decoded entity type.
func (v *Value[DC, Env, Type]) TypeID() Type {
	v.decode()
	return v.typeID
}

// DataCentre returns the decoded data centre.
func (v *Value[DC, Env, Type]) DataCentre() DC {
	v.decode()
	return v.dataCentre
}

// Environment returns the decoded environment.
func (v *Value[DC, Env, Type]) Environment() Env {
	v.decode()
	return v.environment
}

func (v *Value[DC, Env, Type]) decode() {
	v.once.Do(func() {
		v.dataCentre = v.dec.DecodeDataCentre(v.RawDataCentre())
		v.environment = v.dec.DecodeEnvironment(v.RawEnvironment())
		v.typeID = v.dec.DecodeTypeID(v.RawTypeID())
	})
}

// Timestamp returns the embedded milliseconds since the Unix epoch.
func (v *Value[DC, Env, Type]) Timestamp() uint64 {
	return binary.LittleEndian.Uint64(v.raw[timestampOffset:])
}

// Time returns the embedded timestamp in UTC.
func (v *Value[DC, Env, Type]) Time() time.Time {
	return time.UnixMilli(int64(v.Timestamp())).UTC()
}

// Compare orders values by timestamp, then by the raw nonce, type id and
// details bytes, giving a total order. A nil value sorts first.
func (v *Value[DC, Env, Type]) Compare(other *Value[DC, Env, Type]) int {
	switch {
	case v == other:
		return 0
	case v == nil:
		return -1
	case other == nil:
		return 1
	}
	if c := cmp.Compare(v.Timestamp(), other.Timestamp()); c != 0 {
		return c
	}
	return bytes.Compare(v.raw[:timestampOffset], other.raw[:timestampOffset])
}

// CompareAny is Compare for values of unknown type. ok is false when other
// is not a non-nil *Value of the same instantiation.
func (v *Value[DC, Env, Type]) CompareAny(other any) (c int, ok bool) {
	o, ok := other.(*Value[DC, Env, Type])
	if !ok || o == nil || v == nil {
		return 0, false
	}
	return v.Compare(o), true
}

// Equal reports whether both values carry the same timestamp, data centre,
// environment, type id and nonce. Fields are compared as raw codes, so two
// values whose codes differ are unequal even when a decoder maps those codes
// to the same domain value. Equal agrees with Compare returning 0.
func (v *Value[DC, Env, Type]) Equal(other *Value[DC, Env, Type]) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.raw == other.raw
}

func (v *Value[DC, Env, Type]) Before(other *Value[DC, Env, Type]) bool {
	return v.Compare(other) < 0
}

func (v *Value[DC, Env, Type]) After(other *Value[DC, Env, Type]) bool {
	return v.Compare(other) > 0
}

// Between reports whether lo <= v <= hi.
func (v *Value[DC, Env, Type]) Between(lo, hi *Value[DC, Env, Type]) bool {
	return v.Compare(lo) >= 0 && v.Compare(hi) <= 0
}

// String returns the base58 form.
func (v *Value[DC, Env, Type]) String() string {
	return base58.Encode(v.raw[:])
}

// Hex returns the 32 character lowercase hex form.
func (v *Value[DC, Env, Type]) Hex() string {
	return hex.EncodeToString(v.raw[:])
}

func (v *Value[DC, Env, Type]) MarshalBinary() ([]byte, error) {
	return v.Bytes(), nil
}

func (v *Value[DC, Env, Type]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
