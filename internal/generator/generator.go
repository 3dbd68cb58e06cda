package generator

import (
	"context"
	"time"
)

// Generator defines identifier generation, validation and parsing over the
// textual forms of an identifier.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	GenerateBatch(ctx context.Context, req Request, count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// Request names the domain values to stamp into an identifier. Empty fields
// fall back to the generator's configured defaults.
type Request struct {
	DataCentre  string
	Environment string
	Type        string
}

// ParseResult holds the decoded fields of an identifier. Names are empty
// when a code has no configured mapping.
type ParseResult struct {
	Version         uint8     `json:"version"`
	TimestampMs     int64     `json:"timestamp_ms"`
	Time            time.Time `json:"time"`
	Nonce           uint64    `json:"nonce"`
	DataCentre      string    `json:"data_centre"`
	DataCentreCode  uint8     `json:"data_centre_code"`
	Environment     string    `json:"environment"`
	EnvironmentCode uint8     `json:"environment_code"`
	Type            string    `json:"type"`
	TypeCode        uint16    `json:"type_code"`
	Hex             string    `json:"hex"`
	Base58          string    `json:"base58"`
}
