package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWritesFields(t *testing.T) {
	assertion := assert.New(t)

	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core)).WithFields(NewField("component", "push_channel"))

	log.Info("[BTCUSDT] price received", NewField("price", 43123.4))
	log.Error(errors.New("dial failed"))

	entries := logs.All()
	assertion.Len(entries, 2)
	assertion.Equal("[BTCUSDT] price received", entries[0].Message)
	assertion.Equal("push_channel", entries[0].ContextMap()["component"])
	assertion.Equal(43123.4, entries[0].ContextMap()["price"])
	assertion.Equal("dial failed", entries[1].Message)
}

func TestLevelMapping(t *testing.T) {
	assertion := assert.New(t)

	assertion.Equal("debug", DebugLevel.getZapLevel().String())
	assertion.Equal("warn", WarnLevel.getZapLevel().String())
	assertion.Equal("info", Level("unknown").getZapLevel().String())
}
