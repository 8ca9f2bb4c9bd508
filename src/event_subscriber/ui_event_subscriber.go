package event_subscriber

import (
	tea "github.com/charmbracelet/bubbletea"
	"gitlab.com/open-soft/go-crypto-dashboard/src/event"
)

// MessageSender is satisfied by *tea.Program.
type MessageSender interface {
	Send(msg tea.Msg)
}

// UiEventSubscriber hands push channel events to the dashboard event loop,
// where all display state lives.
type UiEventSubscriber struct {
	Sender MessageSender
}

func (u UiEventSubscriber) GetSubscribedEvents() map[string]func(interface{}) {
	return map[string]func(interface{}){
		event.EventConnected:      u.forward,
		event.EventDisconnected:   u.forward,
		event.EventPricesReceived: u.forward,
	}
}

func (u UiEventSubscriber) forward(eventModel interface{}) {
	u.Sender.Send(eventModel)
}
