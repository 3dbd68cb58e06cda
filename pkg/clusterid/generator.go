package clusterid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// Option configures the sources used by a Generator.
type Option func(*sources)

type sources struct {
	random RandomSource
	clock  Clock
}

// WithRandom replaces the default crypto/rand nonce source.
func WithRandom(r RandomSource) Option {
	return func(s *sources) {
		s.random = r
	}
}

// WithClock replaces the default wall clock.
func WithClock(c Clock) Option {
	return func(s *sources) {
		s.clock = c
	}
}

// Generator creates new identifiers and rebuilds stored ones. It holds no
// mutable state and is safe for concurrent use when its sources are.
//
// The encoder is trusted to respect field widths; see Encoder.
type Generator[DC, Env, Type any] struct {
	enc    Encoder[DC, Env, Type]
	dec    Decoder[DC, Env, Type]
	random RandomSource
	clock  Clock
}

// NewGenerator returns a Generator using enc and dec. A nil enc or dec falls
// back to NullEncoder or NullDecoder.
func NewGenerator[DC, Env, Type any](enc Encoder[DC, Env, Type], dec Decoder[DC, Env, Type], opts ...Option) *Generator[DC, Env, Type] {
	s := sources{
		random: CryptoRandom{},
		clock:  SystemClock{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	if enc == nil {
		enc = NullEncoder[DC, Env, Type]{}
	}
	if dec == nil {
		dec = NullDecoder[DC, Env, Type]{}
	}
	return &Generator[DC, Env, Type]{
		enc:    enc,
		dec:    dec,
		random: s.random,
		clock:  s.clock,
	}
}

// NewNullGenerator returns a Generator that stores zero in every domain
// field and decodes every domain field as nil.
func NewNullGenerator(opts ...Option) *Generator[any, any, any] {
	return NewGenerator[any, any, any](nil, nil, opts...)
}

// Generate mints an identifier for the given data centre, environment and
// entity type stamped with the current clock reading.
func (g *Generator[DC, Env, Type]) Generate(dc DC, env Env, typ Type) (*Value[DC, Env, Type], error) {
	nonce, err := g.random.Bytes(nonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	typeID, err := g.enc.EncodeTypeID(typ)
	if err != nil {
		return nil, fmt.Errorf("failed to encode type id: %w", err)
	}
	dcCode, err := g.enc.EncodeDataCentre(dc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode data centre: %w", err)
	}
	envCode, err := g.enc.EncodeEnvironment(env)
	if err != nil {
		return nil, fmt.Errorf("failed to encode environment: %w", err)
	}

	buf := make([]byte, 0, Size)
	buf = append(buf, nonce...)
	buf = binary.LittleEndian.AppendUint16(buf, typeID)
	// No masking: oversized codes overwrite neighbouring sub-fields.
	buf = append(buf, FormatVersion<<versionShift|dcCode<<dataCentreShift|envCode)
	buf = binary.LittleEndian.AppendUint64(buf, g.clock.NowMs())

	return NewValue(buf, g.dec)
}

// GenerateBatch mints count identifiers sharing the same domain values, in
// generation order.
func (g *Generator[DC, Env, Type]) GenerateBatch(count int, dc DC, env Env, typ Type) ([]*Value[DC, Env, Type], error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	ids := make([]*Value[DC, Env, Type], 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate(dc, env, typ)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FromBytes rebuilds an identifier from its 16 stored bytes.
func (g *Generator[DC, Env, Type]) FromBytes(b []byte) (*Value[DC, Env, Type], error) {
	return NewValue(b, g.dec)
}

// FromString rebuilds an identifier from its hex or base58 form.
func (g *Generator[DC, Env, Type]) FromString(s string) (*Value[DC, Env, Type], error) {
	var (
		b   []byte
		err error
	)
	if len(s) == hex.EncodedLen(Size) {
		b, err = hex.DecodeString(s)
	} else {
		b, err = base58.Decode(s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return g.FromBytes(b)
}
