package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/tinychameleon/clusterid/internal/config"
	"github.com/tinychameleon/clusterid/pkg/clusterid"
	pkglog "github.com/tinychameleon/clusterid/pkg/log"
)

var _ Generator = (*ClusterIDGenerator)(nil)

type Format string

const (
	FormatBase58 Format = "base58"
	FormatHex    Format = "hex"
)

type (
	clusterIDs = clusterid.Generator[string, string, string]
	clusterID  = clusterid.Value[string, string, string]
	nameCodec  = clusterid.MapCodec[string, string, string]
)

// ClusterIDGenerator generates cluster identifiers for configured data
// centre, environment and type names.
type ClusterIDGenerator struct {
	ids      *clusterIDs
	codec    *nameCodec
	defaults Request
	format   Format
	maxBatch int
}

// NewClusterIDGenerator builds a generator from configuration. The default
// names must be present in the configured code tables. Names are matched
// case-insensitively.
func NewClusterIDGenerator(cfg config.GeneratorConfig, opts ...clusterid.Option) (*ClusterIDGenerator, error) {
	dcs, err := lowerKeys(cfg.DataCentres)
	if err != nil {
		return nil, fmt.Errorf("invalid code tables: data centres: %w", err)
	}
	envs, err := lowerKeys(cfg.Environments)
	if err != nil {
		return nil, fmt.Errorf("invalid code tables: environments: %w", err)
	}
	types, err := lowerKeys(cfg.Types)
	if err != nil {
		return nil, fmt.Errorf("invalid code tables: types: %w", err)
	}
	codec, err := clusterid.NewMapCodec(dcs, envs, types)
	if err != nil {
		return nil, fmt.Errorf("invalid code tables: %w", err)
	}

	format := Format(cfg.Format)
	switch format {
	case "":
		format = FormatBase58
	case FormatBase58, FormatHex:
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}

	if cfg.MaxBatch < 1 {
		return nil, fmt.Errorf("max batch must be positive, got %d", cfg.MaxBatch)
	}

	defaults := normalize(Request{
		DataCentre:  cfg.DataCentre,
		Environment: cfg.Environment,
		Type:        cfg.Type,
	})
	if _, err := codec.EncodeDataCentre(defaults.DataCentre); err != nil {
		return nil, fmt.Errorf("invalid default: %w", err)
	}
	if _, err := codec.EncodeEnvironment(defaults.Environment); err != nil {
		return nil, fmt.Errorf("invalid default: %w", err)
	}
	if _, err := codec.EncodeTypeID(defaults.Type); err != nil {
		return nil, fmt.Errorf("invalid default: %w", err)
	}

	return &ClusterIDGenerator{
		ids:      clusterid.NewGenerator[string, string, string](codec, codec, opts...),
		codec:    codec,
		defaults: defaults,
		format:   format,
		maxBatch: cfg.MaxBatch,
	}, nil
}

func (g *ClusterIDGenerator) resolve(req Request) Request {
	if req.DataCentre == "" {
		req.DataCentre = g.defaults.DataCentre
	}
	if req.Environment == "" {
		req.Environment = g.defaults.Environment
	}
	if req.Type == "" {
		req.Type = g.defaults.Type
	}
	return normalize(req)
}

func normalize(req Request) Request {
	req.DataCentre = strings.ToLower(req.DataCentre)
	req.Environment = strings.ToLower(req.Environment)
	req.Type = strings.ToLower(req.Type)
	return req
}

// lowerKeys returns a copy of table keyed by lower-cased names. Two names
// differing only in case are rejected.
func lowerKeys[C uint8 | uint16](table map[string]C) (map[string]C, error) {
	out := make(map[string]C, len(table))
	for name, code := range table {
		key := strings.ToLower(name)
		if _, ok := out[key]; ok {
			return nil, fmt.Errorf("name %q configured more than once", key)
		}
		out[key] = code
	}
	return out, nil
}

func (g *ClusterIDGenerator) encode(id *clusterID) string {
	if g.format == FormatHex {
		return id.Hex()
	}
	return id.String()
}

func (g *ClusterIDGenerator) Generate(ctx context.Context, req Request) (string, error) {
	req = g.resolve(req)
	id, err := g.ids.Generate(req.DataCentre, req.Environment, req.Type)
	if err != nil {
		return "", fmt.Errorf("failed to generate cluster id: %w", err)
	}

	s := g.encode(id)
	logger := pkglog.Ctx(ctx)
	logger.Debug().
		Str(pkglog.FieldID, s).
		Str(pkglog.FieldDataCentre, req.DataCentre).
		Str(pkglog.FieldEnvironment, req.Environment).
		Str(pkglog.FieldTypeID, req.Type).
		Msg("cluster id generated")
	return s, nil
}

func (g *ClusterIDGenerator) GenerateBatch(ctx context.Context, req Request, count int) ([]string, error) {
	if count < 1 || count > g.maxBatch {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", g.maxBatch, count)
	}

	req = g.resolve(req)
	batch, err := g.ids.GenerateBatch(count, req.DataCentre, req.Environment, req.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to generate batch cluster ids: %w", err)
	}

	ids := make([]string, 0, count)
	for _, id := range batch {
		ids = append(ids, g.encode(id))
	}

	logger := pkglog.Ctx(ctx)
	logger.Debug().
		Int(pkglog.FieldCount, count).
		Str(pkglog.FieldFormat, string(g.format)).
		Msg("cluster id batch generated")
	return ids, nil
}

func (g *ClusterIDGenerator) Validate(id string) (bool, string) {
	v, err := g.ids.FromString(id)
	if err != nil {
		return false, err.Error()
	}
	if code := v.RawDataCentre(); !g.codec.KnownDataCentre(code) {
		return false, fmt.Sprintf("unknown data centre code %d", code)
	}
	if code := v.RawEnvironment(); !g.codec.KnownEnvironment(code) {
		return false, fmt.Sprintf("unknown environment code %d", code)
	}
	if code := v.RawTypeID(); !g.codec.KnownTypeID(code) {
		return false, fmt.Sprintf("unknown type id code %d", code)
	}
	return true, ""
}

func (g *ClusterIDGenerator) Parse(id string) (*ParseResult, error) {
	v, err := g.ids.FromString(id)
	if err != nil {
		return nil, fmt.Errorf("invalid cluster id: %w", err)
	}

	return &ParseResult{
		Version:         v.Version(),
		TimestampMs:     int64(v.Timestamp()),
		Time:            v.Time(),
		Nonce:           v.Nonce(),
		DataCentre:      v.DataCentre(),
		DataCentreCode:  v.RawDataCentre(),
		Environment:     v.Environment(),
		EnvironmentCode: v.RawEnvironment(),
		Type:            v.TypeID(),
		TypeCode:        v.RawTypeID(),
		Hex:             v.Hex(),
		Base58:          v.String(),
	}, nil
}
