package packager

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/processor"
	"go.uber.org/zap"
)

type processorPackagerKey struct{}

// ProcessorPackager bundles what a state handler needs to work on a round.
type ProcessorPackager struct {
	state     *entity.RoundState
	processor processor.IProcessor
	logger    *zap.Logger
	ctx       context.Context
}

func NewProcessorPackage(
	state *entity.RoundState,
	processor processor.IProcessor,
	logger *zap.Logger,
	ctx context.Context,
) *ProcessorPackager {
	return &ProcessorPackager{
		state:     state,
		processor: processor,
		logger:    logger,
		ctx:       ctx,
	}
}

func (p ProcessorPackager) GetState() *entity.RoundState {
	return p.state
}

func (p ProcessorPackager) GetProcessor() processor.IProcessor {
	return p.processor
}

func (p ProcessorPackager) GetLogger() *zap.Logger {
	return p.logger
}

func (p ProcessorPackager) GetContext() context.Context {
	return p.ctx
}

func GetContextWithProcessorPackager(procPkg *ProcessorPackager) context.Context {
	ctx := procPkg.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, processorPackagerKey{}, procPkg)
}

func GetProcessorPackagerFromContext(ctx context.Context) *ProcessorPackager {
	procPkg, _ := ctx.Value(processorPackagerKey{}).(*ProcessorPackager)
	return procPkg
}
