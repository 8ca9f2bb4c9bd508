package event_subscriber

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-crypto-dashboard/src/event"
	"gitlab.com/open-soft/go-crypto-dashboard/src/logger"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
)

type senderStub struct {
	sent []tea.Msg
}

func (s *senderStub) Send(msg tea.Msg) {
	s.sent = append(s.sent, msg)
}

func TestUiEventSubscriberForwardsFeedEvents(t *testing.T) {
	assertion := assert.New(t)

	sender := &senderStub{}
	events := UiEventSubscriber{Sender: sender}.GetSubscribedEvents()

	_, hello := events[event.EventHello]
	assertion.False(hello)

	batch := event.PricesReceived{Items: []model.PriceTick{{Symbol: "BTCUSDT", Price: 1}}}
	events[event.EventConnected](event.Connected{Sid: "s"})
	events[event.EventPricesReceived](batch)
	events[event.EventDisconnected](event.Disconnected{})

	assertion.Equal([]tea.Msg{event.Connected{Sid: "s"}, batch, event.Disconnected{}}, sender.sent)
}

func TestLogEventSubscriberIgnoresForeignPayloads(t *testing.T) {
	subscriber := LogEventSubscriber{Logger: logger.NewNop()}
	events := subscriber.GetSubscribedEvents()

	assert.NotPanics(t, func() {
		events[event.EventHello]("not a hello")
		events[event.EventPricesReceived](42)
		events[event.EventHello](event.HelloReceived{Payload: []byte(`{}`)})
	})
}
