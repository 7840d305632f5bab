package services

import (
	"context"
	"fmt"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

// Business number prefixes.
const (
	OrderNumberPrefix = "ORD"
	LoadNumberPrefix  = "LD"
)

// NumberGenerator builds human-readable business numbers of the form
// PREFIX+YYYYMM+NNNN, e.g. ORD2026090042. The counter part comes from
// an atomic per-tenant sequence, so concurrent creations within the same
// month never produce the same number. Counters restart every month;
// numbers past 9999 simply grow wider.
type NumberGenerator struct {
	sequences ports.SequenceRepository
	now       func() time.Time
}

// NewNumberGenerator creates a NumberGenerator backed by the given
// sequence repository.
func NewNumberGenerator(sequences ports.SequenceRepository) (*NumberGenerator, error) {
	if sequences == nil {
		return nil, fmt.Errorf("sequences repository is nil")
	}
	return &NumberGenerator{
		sequences: sequences,
		now:       time.Now,
	}, nil
}

// NextOrderNumber returns the next order number for the tenant.
func (g *NumberGenerator) NextOrderNumber(ctx context.Context, tenantID kernel.UUID) (string, error) {
	return g.next(ctx, tenantID, OrderNumberPrefix)
}

// NextLoadNumber returns the next load number for the tenant.
func (g *NumberGenerator) NextLoadNumber(ctx context.Context, tenantID kernel.UUID) (string, error) {
	return g.next(ctx, tenantID, LoadNumberPrefix)
}

func (g *NumberGenerator) next(ctx context.Context, tenantID kernel.UUID, prefix string) (string, error) {
	period := g.now().UTC().Format("200601")

	n, err := g.sequences.Next(ctx, tenantID, prefix, period)
	if err != nil {
		return "", fmt.Errorf("next %s sequence: %w", prefix, err)
	}

	return fmt.Sprintf("%s%s%04d", prefix, period, n), nil
}
