package event_subscriber

import (
	"fmt"

	"gitlab.com/open-soft/go-crypto-dashboard/src/event"
	"gitlab.com/open-soft/go-crypto-dashboard/src/logger"
)

type LogEventSubscriber struct {
	Logger logger.Interface
}

func (l LogEventSubscriber) GetSubscribedEvents() map[string]func(interface{}) {
	return map[string]func(interface{}){
		event.EventHello:          l.OnHello,
		event.EventPricesReceived: l.OnPricesReceived,
	}
}

func (l LogEventSubscriber) OnHello(eventModel interface{}) {
	e, ok := eventModel.(event.HelloReceived)
	if !ok {
		return
	}

	l.Logger.Debug("hello received", logger.NewField("payload", string(e.Payload)))
}

func (l LogEventSubscriber) OnPricesReceived(eventModel interface{}) {
	e, ok := eventModel.(event.PricesReceived)
	if !ok {
		return
	}

	l.Logger.Debug(fmt.Sprintf("price batch received: %d items", len(e.Items)))
}
