package clusterid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinychameleon/clusterid/pkg/clusterid"
)

type region int

const (
	regionUnknown region = iota
	regionNorthAmerica
	regionEurope
)

func TestNullCodec(t *testing.T) {
	var enc clusterid.Encoder[region, string, int] = clusterid.NullEncoder[region, string, int]{}
	var dec clusterid.Decoder[region, string, int] = clusterid.NullDecoder[region, string, int]{}

	for _, in := range []region{regionNorthAmerica, regionEurope} {
		code, err := enc.EncodeDataCentre(in)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), code)
	}
	code, err := enc.EncodeEnvironment("production")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), code)
	typ, err := enc.EncodeTypeID(42)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), typ)

	assert.Equal(t, regionUnknown, dec.DecodeDataCentre(7))
	assert.Equal(t, "", dec.DecodeEnvironment(3))
	assert.Equal(t, 0, dec.DecodeTypeID(65535))
}

func TestMapCodec(t *testing.T) {
	codec, err := clusterid.NewMapCodec(
		map[region]uint8{regionNorthAmerica: 1, regionEurope: 7},
		map[string]uint8{"production": 3},
		map[string]uint16{"account": 65535},
	)
	require.NoError(t, err)

	var _ clusterid.Codec[region, string, string] = codec

	dc, err := codec.EncodeDataCentre(regionEurope)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), dc)
	assert.Equal(t, regionEurope, codec.DecodeDataCentre(7))
	assert.Equal(t, regionUnknown, codec.DecodeDataCentre(2))
	assert.True(t, codec.KnownDataCentre(1))
	assert.False(t, codec.KnownDataCentre(2))

	env, err := codec.EncodeEnvironment("production")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), env)
	assert.Equal(t, "", codec.DecodeEnvironment(0))
	assert.True(t, codec.KnownEnvironment(3))

	typ, err := codec.EncodeTypeID("account")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), typ)
	assert.Equal(t, "account", codec.DecodeTypeID(65535))
	assert.False(t, codec.KnownTypeID(1))

	_, err = codec.EncodeDataCentre(regionUnknown)
	assert.ErrorIs(t, err, clusterid.ErrUnsupportedValue)
	_, err = codec.EncodeEnvironment("staging")
	assert.ErrorIs(t, err, clusterid.ErrUnsupportedValue)
	_, err = codec.EncodeTypeID("invoice")
	assert.ErrorIs(t, err, clusterid.ErrUnsupportedValue)
}

func TestMapCodecRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		dcs  map[string]uint8
		envs map[string]uint8
		want error
	}{
		{"data centre too wide", map[string]uint8{"a": 8}, nil, clusterid.ErrFieldOverflow},
		{"environment too wide", nil, map[string]uint8{"prod": 4}, clusterid.ErrFieldOverflow},
		{"shared data centre code", map[string]uint8{"a": 1, "b": 1}, nil, clusterid.ErrDuplicateCode},
		{"shared environment code", nil, map[string]uint8{"dev": 0, "test": 0}, clusterid.ErrDuplicateCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clusterid.NewMapCodec[string, string, string](tt.dcs, tt.envs, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapCodecCopiesTables(t *testing.T) {
	dcs := map[string]uint8{"eu": 1}
	codec, err := clusterid.NewMapCodec[string, string, string](dcs, nil, nil)
	require.NoError(t, err)

	dcs["us"] = 2
	_, err = codec.EncodeDataCentre("us")
	assert.ErrorIs(t, err, clusterid.ErrUnsupportedValue)
}
