package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// engine.io v4 packet types
const EnginePacketOpen = '0'
const EnginePacketClose = '1'
const EnginePacketPing = '2'
const EnginePacketPong = '3'
const EnginePacketMessage = '4'
const EnginePacketNoop = '6'

// socket.io v5 packet types, carried inside an engine.io message
const SocketPacketConnect = '0'
const SocketPacketDisconnect = '1'
const SocketPacketEvent = '2'
const SocketPacketConnectError = '4'

type EngineHandshake struct {
	Sid          string   `json:"sid"`
	Upgrades     []string `json:"upgrades"`
	PingInterval int64    `json:"pingInterval"`
	PingTimeout  int64    `json:"pingTimeout"`
	MaxPayload   int64    `json:"maxPayload"`
}

type SocketPacket struct {
	EngineType byte
	SocketType byte
	Namespace  string
	Event      string
	Payload    json.RawMessage
}

func (s SocketPacket) IsEvent() bool {
	return s.EngineType == EnginePacketMessage && s.SocketType == SocketPacketEvent
}

func (s SocketPacket) IsConnect() bool {
	return s.EngineType == EnginePacketMessage && s.SocketType == SocketPacketConnect
}

func (s SocketPacket) IsDisconnect() bool {
	if s.EngineType == EnginePacketClose {
		return true
	}

	return s.EngineType == EnginePacketMessage &&
		(s.SocketType == SocketPacketDisconnect || s.SocketType == SocketPacketConnectError)
}

func ParseSocketPacket(message []byte) (SocketPacket, error) {
	if len(message) == 0 {
		return SocketPacket{}, errors.New("empty socket frame")
	}

	packet := SocketPacket{EngineType: message[0]}
	body := string(message[1:])

	if packet.EngineType == EnginePacketOpen {
		packet.Payload = json.RawMessage(body)
		return packet, nil
	}

	if packet.EngineType != EnginePacketMessage {
		return packet, nil
	}

	if len(body) == 0 {
		return SocketPacket{}, errors.New("socket frame without socket.io type")
	}

	packet.SocketType = body[0]
	body = body[1:]

	if strings.HasPrefix(body, "/") {
		end := strings.Index(body, ",")
		if end == -1 {
			packet.Namespace = body
			return packet, nil
		}
		packet.Namespace = body[:end]
		body = body[end+1:]
	}

	// optional ack id before the payload
	body = strings.TrimLeft(body, "0123456789")

	if packet.SocketType != SocketPacketEvent {
		if len(body) > 0 {
			packet.Payload = json.RawMessage(body)
		}
		return packet, nil
	}

	var arguments []json.RawMessage
	if err := json.Unmarshal([]byte(body), &arguments); err != nil {
		return SocketPacket{}, errors.New(fmt.Sprintf("invalid socket event frame: %s", err.Error()))
	}

	if len(arguments) == 0 {
		return SocketPacket{}, errors.New("socket event frame without name")
	}

	if err := json.Unmarshal(arguments[0], &packet.Event); err != nil {
		return SocketPacket{}, errors.New(fmt.Sprintf("invalid socket event name: %s", err.Error()))
	}

	if len(arguments) > 1 {
		packet.Payload = arguments[1]
	}

	return packet, nil
}

func SocketConnectFrame() []byte {
	return []byte{EnginePacketMessage, SocketPacketConnect}
}

func EnginePongFrame() []byte {
	return []byte{EnginePacketPong}
}

// SocketEventFrame encodes an event the way a socket.io server emits it.
func SocketEventFrame(event string, payload any) ([]byte, error) {
	encoded, err := json.Marshal([]any{event, payload})
	if err != nil {
		return nil, err
	}

	return append([]byte{EnginePacketMessage, SocketPacketEvent}, encoded...), nil
}
