// Package clusterid generates and parses compact, time-ordered 128-bit
// identifiers for entities spread across data centres, environments and
// entity types.
//
// A version 1 identifier is 16 bytes, little-endian:
//
//	o-------------------------------------------------------------------------------o
//	| byte 00 | byte 01 | byte 02 | byte 03 | byte 04 | byte 05 | byte 06 | byte 07 |
//	|-------------------------------------------------------------------------------|
//	|                   random nonce                  |      type id      | details |
//	|-------------------------------------------------------------------------------|
//	| byte 08 | byte 09 | byte 10 | byte 11 | byte 12 | byte 13 | byte 14 | byte 15 |
//	|-------------------------------------------------------------------------------|
//	|                          timestamp (ms since epoch)                           |
//	o-------------------------------------------------------------------------------o
//
// The details byte packs three sub-fields:
//
//	o---------------------------------------------------------------o
//	| bit 7 | bit 6 | bit 5 | bit 4 | bit 3 | bit 2 | bit 1 | bit 0 |
//	|---------------------------------------------------------------|
//	|        version        |      data centre      |  environment  |
//	o---------------------------------------------------------------o
//
// The mapping between application values and the narrow data centre,
// environment and type id fields is supplied by an Encoder and a Decoder.
// NullEncoder and NullDecoder are used when no mapping is given; MapCodec
// builds one from lookup tables.
//
// Basic usage:
//
//	codec, err := clusterid.NewMapCodec(
//		map[string]uint8{"eu-west": 1, "us-east": 2},
//		map[string]uint8{"staging": 1, "production": 2},
//		map[string]uint16{"user": 1, "order": 2},
//	)
//	gen := clusterid.NewGenerator[string, string, string](codec, codec)
//	id, err := gen.Generate("eu-west", "production", "order")
//	fmt.Println(id, id.Time(), id.DataCentre())
//
// A 40-bit nonce gives roughly a 1% chance of collision after about 150,000
// identifiers minted within the same millisecond.
package clusterid
