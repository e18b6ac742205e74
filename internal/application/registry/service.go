package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/infrastructure/logger"
	"github.com/registry/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// writePipeline holds what the three record services share: payload checks,
// owner resolution and metrics.
type writePipeline struct {
	kind      registry.Kind
	uniqueKey string
	validator *Validator
	owners    *registry.OwnershipResolver
	metrics   *telemetry.RegistryMetrics
	logger    *zap.Logger
}

// validate runs every field check and reports the failing fields together
func (p *writePipeline) validate(ctx context.Context, span trace.Span, payload any) error {
	err := p.validator.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs registry.FieldErrors
	if errors.As(err, &fieldErrs) {
		p.metrics.RecordValidationFailure(ctx, p.kind.String(), fieldErrs.Fields())
	}
	telemetry.RecordError(span, err)
	return err
}

// checkOwner resolves ownerID. Only called once field validation has passed.
func (p *writePipeline) checkOwner(ctx context.Context, span trace.Span, ownerID string) (registry.Owner, error) {
	owner, err := p.owners.Resolve(ctx, ownerID)
	if err == nil {
		return owner, nil
	}
	if errors.Is(err, registry.ErrOwnerNotFound) {
		p.metrics.RecordOwnershipRejection(ctx, p.kind.String())
		logger.WithLogger(ctx, p.logger).Debug("owner not found",
			zap.String("kind", p.kind.String()),
			zap.String("owner_id", ownerID),
		)
	}
	telemetry.RecordError(span, err)
	return nil, err
}

// uniqueViolation is the field error reported on the natural key
func (p *writePipeline) uniqueViolation(ctx context.Context, span trace.Span) error {
	p.metrics.RecordUniqueConflict(ctx, p.kind.String())
	err := registry.NewUniqueViolation(p.kind, p.uniqueKey)
	telemetry.RecordError(span, err)
	return err
}

// storeFailure maps a store write error. Duplicate keys that slipped past the
// pre-check (a concurrent writer) become the same field error.
func (p *writePipeline) storeFailure(ctx context.Context, span trace.Span, op string, err error) error {
	if errors.Is(err, registry.ErrDuplicateKey) {
		return p.uniqueViolation(ctx, span)
	}
	telemetry.RecordError(span, err)
	logger.WithLogger(ctx, p.logger).Error("registry store write failed",
		zap.String("kind", p.kind.String()),
		zap.String("operation", op),
		zap.Error(err),
	)
	return fmt.Errorf("%s %s: %w", op, p.kind.Label(), err)
}

func (p *writePipeline) written(ctx context.Context, op string, id uint64) {
	p.metrics.RecordWrite(ctx, p.kind.String(), op)
	logger.WithLogger(ctx, p.logger).Info(fmt.Sprintf("%s %sd", p.kind.Label(), op), zap.Uint64("id", id))
}
