package gesture

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/gesture-runner/internal/core"
)

// Wire message types accepted by the bridge.
const (
	MsgHello   = "hello"
	MsgGesture = "gesture"
)

// envelope is the wire frame: a type tag plus the raw payload bytes.
type envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

// gesturePayload covers both payload shapes recognizer builds have
// shipped: the flat {"lane","isClosed"} form and the older nested
// {"hand":{"lane","closed"}} form. Shape negotiation happens here and
// nowhere else.
type gesturePayload struct {
	Lane     string       `json:"lane"`
	IsClosed *bool        `json:"isClosed"`
	Hand     *handPayload `json:"hand"`
}

type handPayload struct {
	Lane   string `json:"lane"`
	Closed bool   `json:"closed"`
}

// DecodeSignal normalizes one wire message into a Signal.
// Hello messages and unknown envelope types return ok=false with no
// error; they are valid traffic that carries no detection.
func DecodeSignal(data []byte) (Signal, bool, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Signal{}, false, fmt.Errorf("gesture: bad envelope: %w", err)
	}

	switch env.T {
	case MsgGesture:
		return decodePayload(env.P)
	case MsgHello:
		return Signal{}, false, nil
	case "":
		// Bare payload without an envelope, sent by early recognizer
		// builds. Negotiate it like a gesture message.
		return decodePayload(data)
	default:
		return Signal{}, false, nil
	}
}

func decodePayload(data []byte) (Signal, bool, error) {
	var p gesturePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return Signal{}, false, fmt.Errorf("gesture: bad payload: %w", err)
	}

	lane, closed := p.Lane, false
	switch {
	case p.Hand != nil:
		lane, closed = p.Hand.Lane, p.Hand.Closed
	case p.IsClosed != nil:
		closed = *p.IsClosed
	case p.Lane == "":
		// Neither shape matched; not a detection.
		return Signal{}, false, nil
	}

	sig := Signal{Closed: closed}
	if l, ok := core.ParseLane(lane); ok {
		sig.Lane = l
		sig.Tracked = true
	}
	return sig, true, nil
}
