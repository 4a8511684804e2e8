// Package sonic encodes entry actionables as tagged JSON using bytedance/sonic.
package sonic

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/fwojciec/palet"
)

// Ensure Codec implements palet.ActionableCodec at compile time.
var _ palet.ActionableCodec = (*Codec)(nil)

// envelope is the stored form of an actionable. Type selects which of the
// payload fields is populated.
type envelope struct {
	Type          palet.ActionableType       `json:"type"`
	Application   *palet.ApplicationConfig   `json:"application,omitempty"`
	CustomCommand *palet.CustomCommandConfig `json:"custom_command,omitempty"`
}

// Codec converts actionables to and from tagged JSON.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode returns the tagged JSON for a. A nil a encodes to "".
func (c *Codec) Encode(a palet.Actionable) (string, error) {
	var env envelope
	switch v := a.(type) {
	case nil:
		return "", nil
	case *palet.ApplicationConfig:
		if v == nil {
			return "", nil
		}
		env = envelope{Type: palet.ActionableApplication, Application: v}
	case *palet.CustomCommandConfig:
		if v == nil {
			return "", nil
		}
		env = envelope{Type: palet.ActionableCustomCommand, CustomCommand: v}
	default:
		return "", palet.Errorf(palet.EINVALID, "unknown actionable type %T", a)
	}

	s, err := sonic.MarshalString(&env)
	if err != nil {
		return "", fmt.Errorf("failed to encode actionable: %w", err)
	}
	return s, nil
}

// Decode parses tagged JSON produced by Encode. Unknown tags and payloads
// missing for their tag are EINVALID.
func (c *Codec) Decode(s string) (palet.Actionable, error) {
	var env envelope
	if err := sonic.UnmarshalString(s, &env); err != nil {
		return nil, palet.Errorf(palet.EINVALID, "malformed actionable: %v", err)
	}

	switch env.Type {
	case palet.ActionableApplication:
		if env.Application == nil {
			return nil, palet.Errorf(palet.EINVALID, "actionable %q has no payload", env.Type)
		}
		return env.Application, nil
	case palet.ActionableCustomCommand:
		if env.CustomCommand == nil {
			return nil, palet.Errorf(palet.EINVALID, "actionable %q has no payload", env.Type)
		}
		return env.CustomCommand, nil
	default:
		return nil, palet.Errorf(palet.EINVALID, "unknown actionable type %q", env.Type)
	}
}
