package packager

import (
	"context"
	"testing"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/engine"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/processor"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProcessorPackagerContext(t *testing.T) {
	assert.Nil(t, GetProcessorPackagerFromContext(context.Background()))

	state := entity.NewRoundState("round", entity.NewDeck(), entity.NewChips(100))
	proc := processor.NewMatchProcessor(engine.NewGameEngine(), nil)
	procPkg := NewProcessorPackage(state, proc, zap.NewNop(), context.Background())

	ctx := GetContextWithProcessorPackager(procPkg)
	got := GetProcessorPackagerFromContext(ctx)
	assert.Same(t, procPkg, got)
	assert.Same(t, state, got.GetState())
	assert.Equal(t, proc, got.GetProcessor())
	assert.Equal(t, context.Background(), got.GetContext())
}
