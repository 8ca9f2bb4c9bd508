package event

import (
	"encoding/json"

	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
)

const EventConnected = "connect"
const EventDisconnected = "disconnect"
const EventHello = "hello"
const EventPricesReceived = "prices"

type Connected struct {
	Sid string
}

type Disconnected struct {
	Reason string
}

type HelloReceived struct {
	Payload json.RawMessage
}

type PricesReceived struct {
	Items []model.PriceTick
}
