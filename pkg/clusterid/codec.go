package clusterid

import (
	"fmt"
	"maps"
)

// Encoder maps domain values onto the packed integer fields of an identifier.
//
// Implementations must keep data centre codes within 3 bits and environment
// codes within 2 bits. Wider codes are not rejected by the Generator; they
// spill into the neighbouring sub-fields of the details byte.
type Encoder[DC, Env, Type any] interface {
	EncodeDataCentre(dc DC) (uint8, error)
	EncodeEnvironment(env Env) (uint8, error)
	EncodeTypeID(typ Type) (uint16, error)
}

// Decoder maps packed integer fields back onto domain values. It must accept
// every integer in a field's range, returning an absent value for codes it
// does not recognise.
type Decoder[DC, Env, Type any] interface {
	DecodeDataCentre(code uint8) DC
	DecodeEnvironment(code uint8) Env
	DecodeTypeID(code uint16) Type
}

// Codec is an Encoder and Decoder pair.
type Codec[DC, Env, Type any] interface {
	Encoder[DC, Env, Type]
	Decoder[DC, Env, Type]
}

// NullEncoder encodes every domain value as zero.
type NullEncoder[DC, Env, Type any] struct{}

func (NullEncoder[DC, Env, Type]) EncodeDataCentre(DC) (uint8, error) {
	return 0, nil
}

func (NullEncoder[DC, Env, Type]) EncodeEnvironment(Env) (uint8, error) {
	return 0, nil
}

func (NullEncoder[DC, Env, Type]) EncodeTypeID(Type) (uint16, error) {
	return 0, nil
}

// NullDecoder decodes every code as the zero value of its domain type.
type NullDecoder[DC, Env, Type any] struct{}

func (NullDecoder[DC, Env, Type]) DecodeDataCentre(uint8) (dc DC) {
	return dc
}

func (NullDecoder[DC, Env, Type]) DecodeEnvironment(uint8) (env Env) {
	return env
}

func (NullDecoder[DC, Env, Type]) DecodeTypeID(uint16) (typ Type) {
	return typ
}

// MapCodec is a table-driven Codec. Unknown domain values fail to encode
// with ErrUnsupportedValue; unknown codes decode to the zero value.
type MapCodec[DC, Env, Type comparable] struct {
	dataCentres  map[DC]uint8
	environments map[Env]uint8
	types        map[Type]uint16

	dataCentreByCode  map[uint8]DC
	environmentByCode map[uint8]Env
	typeByCode        map[uint16]Type
}

// NewMapCodec builds a MapCodec from code tables. Every code must fit its
// field and no two domain values of the same field may share a code.
func NewMapCodec[DC, Env, Type comparable](dataCentres map[DC]uint8, environments map[Env]uint8, types map[Type]uint16) (*MapCodec[DC, Env, Type], error) {
	dcByCode, err := invert("data centre", dataCentres, MaxDataCentre)
	if err != nil {
		return nil, err
	}
	envByCode, err := invert("environment", environments, MaxEnvironment)
	if err != nil {
		return nil, err
	}
	typeByCode, err := invert("type id", types, MaxTypeID)
	if err != nil {
		return nil, err
	}

	return &MapCodec[DC, Env, Type]{
		dataCentres:       maps.Clone(dataCentres),
		environments:      maps.Clone(environments),
		types:             maps.Clone(types),
		dataCentreByCode:  dcByCode,
		environmentByCode: envByCode,
		typeByCode:        typeByCode,
	}, nil
}

func (c *MapCodec[DC, Env, Type]) EncodeDataCentre(dc DC) (uint8, error) {
	return lookup("data centre", c.dataCentres, dc)
}

func (c *MapCodec[DC, Env, Type]) EncodeEnvironment(env Env) (uint8, error) {
	return lookup("environment", c.environments, env)
}

func (c *MapCodec[DC, Env, Type]) EncodeTypeID(typ Type) (uint16, error) {
	return lookup("type id", c.types, typ)
}

func (c *MapCodec[DC, Env, Type]) DecodeDataCentre(code uint8) DC {
	return c.dataCentreByCode[code]
}

func (c *MapCodec[DC, Env, Type]) DecodeEnvironment(code uint8) Env {
	return c.environmentByCode[code]
}

func (c *MapCodec[DC, Env, Type]) DecodeTypeID(code uint16) Type {
	return c.typeByCode[code]
}

// KnownDataCentre reports whether code has a data centre mapping.
func (c *MapCodec[DC, Env, Type]) KnownDataCentre(code uint8) bool {
	_, ok := c.dataCentreByCode[code]
	return ok
}

// KnownEnvironment reports whether code has an environment mapping.
func (c *MapCodec[DC, Env, Type]) KnownEnvironment(code uint8) bool {
	_, ok := c.environmentByCode[code]
	return ok
}

// KnownTypeID reports whether code has a type id mapping.
func (c *MapCodec[DC, Env, Type]) KnownTypeID(code uint16) bool {
	_, ok := c.typeByCode[code]
	return ok
}

type fieldCode interface {
	~uint8 | ~uint16
}

func invert[K comparable, C fieldCode](field string, m map[K]C, limit C) (map[C]K, error) {
	out := make(map[C]K, len(m))
	for k, c := range m {
		if c > limit {
			return nil, fmt.Errorf("%w: %s %v has code %d, max %d", ErrFieldOverflow, field, k, c, limit)
		}
		if prev, ok := out[c]; ok {
			return nil, fmt.Errorf("%w: %s %v and %v both use code %d", ErrDuplicateCode, field, prev, k, c)
		}
		out[c] = k
	}
	return out, nil
}

func lookup[K comparable, C fieldCode](field string, m map[K]C, k K) (C, error) {
	c, ok := m[k]
	if !ok {
		return 0, fmt.Errorf("%w: %s %v", ErrUnsupportedValue, field, k)
	}
	return c, nil
}
