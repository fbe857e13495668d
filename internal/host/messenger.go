package host

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// OpenSettingsMessage asks the application to show its settings
const OpenSettingsMessage = "open-settings"

// Message is sent from the surface to the application process
type Message struct {
	Type string `json:"type"`
}

// Messenger delivers messages to the application process
type Messenger interface {
	Send(msg Message) error
}

// JSONMessenger writes every message as a JSON object on its own line
type JSONMessenger struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewJSONMessenger(w io.Writer) *JSONMessenger {
	return &JSONMessenger{enc: json.NewEncoder(w)}
}

func (m *JSONMessenger) Send(msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.enc.Encode(msg); err != nil {
		return fmt.Errorf("failed to send %s message: %w", msg.Type, err)
	}

	return nil
}
