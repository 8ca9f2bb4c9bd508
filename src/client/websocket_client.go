package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"gitlab.com/open-soft/go-crypto-dashboard/src/event"
	"gitlab.com/open-soft/go-crypto-dashboard/src/logger"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
)

const DefaultReconnectDelay = time.Second * 3

type EventDispatcherInterface interface {
	Dispatch(event interface{}, eventName string)
}

// SocketAddress turns the dashboard base URL into the socket.io websocket
// endpoint, e.g. http://host:8080 -> ws://host:8080/socket.io/?EIO=4&transport=websocket.
func SocketAddress(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrap(err, "parse push channel address")
	}

	switch parsed.Scheme {
	case "https", "wss":
		parsed.Scheme = "wss"
	case "http", "ws", "":
		parsed.Scheme = "ws"
	default:
		return "", errors.Errorf("unsupported push channel scheme: %s", parsed.Scheme)
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/socket.io/"
	query := parsed.Query()
	query.Set("EIO", "4")
	query.Set("transport", "websocket")
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// PushChannel keeps one websocket connection to the socket.io price feed and
// dispatches its lifecycle and data events. The only recovery it does is the
// fixed-delay redial every socket.io client performs by default.
type PushChannel struct {
	Address        string
	Dispatcher     EventDispatcherInterface
	Logger         logger.Interface
	Dialer         *websocket.Dialer
	ReconnectDelay time.Duration
}

// Listen blocks until ctx is cancelled.
func (p *PushChannel) Listen(ctx context.Context) {
	connectionId := int64(0)

	for {
		connectionId++
		err := p.listenOnce(ctx, connectionId)

		if ctx.Err() != nil {
			return
		}

		if err != nil {
			p.Logger.Warn(fmt.Sprintf("PushChannel [%d] %s, wait and reconnect...", connectionId, err.Error()))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(p.reconnectDelay()):
		}
	}
}

func (p *PushChannel) listenOnce(ctx context.Context, connectionId int64) error {
	dialer := p.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	connection, _, err := dialer.DialContext(ctx, p.Address, nil)
	if err != nil {
		return errors.Wrapf(err, "dial [%s]", p.Address)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = connection.Close()
		case <-done:
		}
	}()
	defer connection.Close()

	connected := false
	defer func() {
		if connected {
			p.Dispatcher.Dispatch(event.Disconnected{Reason: "connection closed"}, event.EventDisconnected)
		}
	}()

	for {
		_, message, err := connection.ReadMessage()
		if err != nil {
			return errors.Wrap(err, "read")
		}

		packet, err := model.ParseSocketPacket(message)
		if err != nil {
			p.Logger.Warn(fmt.Sprintf("PushChannel [%d] skip frame: %s", connectionId, err.Error()))
			continue
		}

		switch {
		case packet.EngineType == model.EnginePacketOpen:
			if err := connection.WriteMessage(websocket.TextMessage, model.SocketConnectFrame()); err != nil {
				return errors.Wrap(err, "send connect")
			}
		case packet.EngineType == model.EnginePacketPing:
			if err := connection.WriteMessage(websocket.TextMessage, model.EnginePongFrame()); err != nil {
				return errors.Wrap(err, "send pong")
			}
		case packet.IsConnect():
			connected = true
			var handshake model.EngineHandshake
			_ = json.Unmarshal(packet.Payload, &handshake)
			p.Logger.Info(fmt.Sprintf("PushChannel [%d] connected", connectionId), logger.NewField("sid", handshake.Sid))
			p.Dispatcher.Dispatch(event.Connected{Sid: handshake.Sid}, event.EventConnected)
		case packet.IsDisconnect():
			return errors.New("server closed the namespace")
		case packet.IsEvent():
			p.dispatchEvent(connectionId, packet)
		}
	}
}

func (p *PushChannel) dispatchEvent(connectionId int64, packet model.SocketPacket) {
	switch packet.Event {
	case event.EventHello:
		p.Dispatcher.Dispatch(event.HelloReceived{Payload: packet.Payload}, event.EventHello)
	case event.EventPricesReceived:
		items := make([]model.PriceTick, 0)
		if err := json.Unmarshal(packet.Payload, &items); err != nil {
			p.Logger.Warn(fmt.Sprintf("PushChannel [%d] prices decode: %s", connectionId, err.Error()))
			return
		}
		p.Dispatcher.Dispatch(event.PricesReceived{Items: items}, event.EventPricesReceived)
	default:
		p.Logger.Debug(fmt.Sprintf("PushChannel [%d] unhandled event %s", connectionId, packet.Event))
	}
}

func (p *PushChannel) reconnectDelay() time.Duration {
	if p.ReconnectDelay <= 0 {
		return DefaultReconnectDelay
	}

	return p.ReconnectDelay
}
