// --- File: pkg/channel/envelope.go ---
package channel

import "encoding/json"

// Frame kinds. A call expects exactly one reply carrying the same ID; an
// event is fire-and-forget and carries no ID.
const (
	kindCall  = "call"
	kindReply = "reply"
	kindEvent = "event"
)

// frame is the wire envelope for everything crossing a stream, one JSON
// object per line.
type frame struct {
	Kind   string          `json:"kind"`
	ID     string          `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Args   json.RawMessage `json:"args,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}
