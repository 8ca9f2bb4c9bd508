package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestSequencerLatestWins(t *testing.T) {
	assertion := assert.New(t)
	sequencer := RequestSequencer{}

	firstCtx, first := sequencer.Begin(context.Background())
	secondCtx, second := sequencer.Begin(context.Background())

	assertion.ErrorIs(firstCtx.Err(), context.Canceled)
	assertion.NoError(secondCtx.Err())

	assertion.False(sequencer.Finish(first))
	assertion.True(sequencer.Finish(second))
	assertion.ErrorIs(secondCtx.Err(), context.Canceled)
}
