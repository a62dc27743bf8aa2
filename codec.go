package sortviz

import (
	"encoding/json"
	"fmt"
)

// Step op names used in the JSON envelopes.
const (
	opCompare       = "compare"
	opSwap          = "swap"
	opHold          = "hold"
	opUnhold        = "unhold"
	opSlide         = "slide"
	opJoin          = "join"
	opMergeComplete = "merge_complete"
)

// UnknownStepError is returned when decoding a step whose op is not part of
// the vocabulary.
type UnknownStepError struct {
	// Op is the unrecognized operation name
	Op string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("sortviz: unknown step op %q", e.Op)
}

// NewUnknownStepError creates an UnknownStepError
func NewUnknownStepError(op string) error {
	return &UnknownStepError{Op: op}
}

// stepEnvelope is the wire form of every step variant: an op tag plus the
// positional fields the variant uses. Unused fields are omitted.
type stepEnvelope struct {
	Op        string `json:"op"`
	I         int    `json:"i,omitempty"`
	J         int    `json:"j,omitempty"`
	Index     int    `json:"index,omitempty"`
	From      int    `json:"from,omitempty"`
	To        int    `json:"to,omitempty"`
	Intensity string `json:"intensity,omitempty"`
}

// MarshalText implements encoding.TextMarshaler.
func (i Intensity) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Intensity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "small":
		*i = IntensitySmall
	case "large":
		*i = IntensityLarge
	default:
		return fmt.Errorf("sortviz: unknown intensity %q", string(text))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Compare) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepEnvelope{Op: opCompare, I: s.I, J: s.J, Intensity: s.Intensity.String()})
}

// MarshalJSON implements json.Marshaler.
func (s Swap) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepEnvelope{Op: opSwap, I: s.I, J: s.J})
}

// MarshalJSON implements json.Marshaler.
func (s Hold) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepEnvelope{Op: opHold, Index: s.Index})
}

// MarshalJSON implements json.Marshaler.
func (Unhold) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepEnvelope{Op: opUnhold})
}

// MarshalJSON implements json.Marshaler.
func (s Slide) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepEnvelope{Op: opSlide, From: s.From, To: s.To})
}

// MarshalJSON implements json.Marshaler.
func (s Join) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepEnvelope{Op: opJoin, From: s.From, To: s.To})
}

// MarshalJSON implements json.Marshaler.
func (MergeComplete) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepEnvelope{Op: opMergeComplete})
}

// UnmarshalStep decodes one JSON step envelope back into its variant.
func UnmarshalStep(data []byte) (Step, error) {
	var env stepEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Op {
	case opCompare:
		var intensity Intensity
		if err := intensity.UnmarshalText([]byte(env.Intensity)); err != nil {
			return nil, err
		}
		return Compare{I: env.I, J: env.J, Intensity: intensity}, nil
	case opSwap:
		return Swap{I: env.I, J: env.J}, nil
	case opHold:
		return Hold{Index: env.Index}, nil
	case opUnhold:
		return Unhold{}, nil
	case opSlide:
		return Slide{From: env.From, To: env.To}, nil
	case opJoin:
		return Join{From: env.From, To: env.To}, nil
	case opMergeComplete:
		return MergeComplete{}, nil
	default:
		return nil, NewUnknownStepError(env.Op)
	}
}

// Steps is a step sequence that round-trips through JSON as an array of op
// envelopes. []Step marshals on its own; Steps adds the decoding side.
type Steps []Step

// UnmarshalJSON implements json.Unmarshaler.
func (s *Steps) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]Step, len(raw))
	for i, msg := range raw {
		step, err := UnmarshalStep(msg)
		if err != nil {
			return err
		}
		out[i] = step
	}
	*s = out
	return nil
}
