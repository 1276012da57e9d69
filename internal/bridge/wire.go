package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Outbound command kinds.
const (
	CommandReload         = "reload"
	CommandUpdateProperty = "update-property"
)

// ErrUnknownMessage is returned for envelopes whose type is not a known event.
var ErrUnknownMessage = errors.New("bridge: unknown message type")

// Message is the JSON envelope exchanged with the target. Snapshots ride on
// the notification that announces them.
type Message struct {
	Type         string         `json:"type"`
	UUID         string         `json:"uuid,omitempty"`
	UUIDs        []string       `json:"uuids,omitempty"`
	ResourceType string         `json:"resourceType,omitempty"`
	Entities     []EntityRef    `json:"entities,omitempty"`
	Graph        *GraphNode     `json:"graph,omitempty"`
	Entity       *Entity        `json:"entity,omitempty"`
	Info         *RenderingInfo `json:"info,omitempty"`
	Message      string         `json:"message,omitempty"`
	Property     string         `json:"property,omitempty"`
	Value        any            `json:"value,omitempty"`
}

// Decode parses one envelope.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	if m.Type == "" {
		return Message{}, fmt.Errorf("decode message: %w", ErrUnknownMessage)
	}
	return m, nil
}

// Encode serializes one envelope.
func Encode(m Message) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode message %s: %w", m.Type, err)
	}
	return data, nil
}

// Event converts the envelope into its typed notification.
func (m Message) Event() (Event, error) {
	switch m.Type {
	case KindLoad:
		return Load{}, nil
	case KindError:
		return Error{Message: m.Message}, nil
	case KindObserve:
		return Observe{UUIDs: m.UUIDs}, nil
	case KindOverviewUpdate:
		return OverviewUpdate{Type: m.ResourceType, Entities: m.Entities}, nil
	case KindSceneGraphUpdate:
		return SceneGraphUpdate{UUID: m.UUID}, nil
	case KindEntityUpdate:
		return EntityUpdate{UUID: m.UUID}, nil
	case KindRendererUpdate:
		return RendererUpdate{UUID: m.UUID}, nil
	case KindRenderingInfoUpdate:
		return RenderingInfoUpdate{UUID: m.UUID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, m.Type)
	}
}
