package interactive

import (
	"encoding/json"

	"github.com/kattlog/kattlog"
)

// MessageType discriminates the closed set of cross-frame message
// variants. Consumers pattern-match on it (or on the Go message type).
type MessageType string

// Wire message types.
const (
	TypeSetMode MessageType = "SET_MODE"
	TypeReady   MessageType = "READY"
	TypeCapture MessageType = "KATTLOG_CAPTURE"
)

// Message is one cross-frame message. The protocol is one-way and
// fire-and-forget: there is no acknowledgment or retry.
type Message interface {
	Type() MessageType
}

// SetMode is the inbound mode switch from the hosting frame.
type SetMode struct {
	Mode kattlog.Mode `json:"mode"`
}

// Type returns the message discriminator.
func (SetMode) Type() MessageType { return TypeSetMode }

// Ready is the outbound readiness heartbeat.
type Ready struct {
	URL string `json:"url"`
}

// Type returns the message discriminator.
func (Ready) Type() MessageType { return TypeReady }

// Capture is the outbound confirmed-selection event.
type Capture struct {
	kattlog.InteractiveCapture
}

// Type returns the message discriminator.
func (Capture) Type() MessageType { return TypeCapture }

// Bus carries messages across the frame boundary. Send must never block
// the caller: the scoring path runs on the page's event loop.
type Bus interface {
	Send(msg Message)
}

// ChannelBus is a channel-backed Bus. When the channel is full the
// message is dropped, matching the fire-and-forget protocol: a lost READY
// is repaired by the next heartbeat, and the hosting frame drains
// captures promptly.
type ChannelBus struct {
	C chan Message
}

// NewChannelBus creates a ChannelBus with a small buffer.
func NewChannelBus() *ChannelBus {
	return &ChannelBus{C: make(chan Message, 16)}
}

// Send delivers the message without blocking, dropping it when the
// buffer is full.
func (b *ChannelBus) Send(msg Message) {
	select {
	case b.C <- msg:
	default:
	}
}

// EncodeMessage serializes a message into its wire JSON, with the type
// discriminator injected into the payload object.
func EncodeMessage(msg Message) ([]byte, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	typeJSON, err := json.Marshal(msg.Type())
	if err != nil {
		return nil, err
	}
	fields["type"] = typeJSON
	return json.Marshal(fields)
}

// DecodeMessage parses wire JSON into the matching message variant.
// Unknown types return ENOTFOUND so callers can ignore foreign traffic on
// a shared channel.
func DecodeMessage(data []byte) (Message, error) {
	var head struct {
		Type MessageType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, kattlog.Errorf(kattlog.EINVALID, "malformed message: %v", err)
	}

	switch head.Type {
	case TypeSetMode:
		var msg SetMode
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, kattlog.Errorf(kattlog.EINVALID, "malformed SET_MODE: %v", err)
		}
		return msg, nil
	case TypeReady:
		var msg Ready
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, kattlog.Errorf(kattlog.EINVALID, "malformed READY: %v", err)
		}
		return msg, nil
	case TypeCapture:
		var msg Capture
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, kattlog.Errorf(kattlog.EINVALID, "malformed capture: %v", err)
		}
		return msg, nil
	default:
		return nil, kattlog.Errorf(kattlog.ENOTFOUND, "unknown message type %q", head.Type)
	}
}
