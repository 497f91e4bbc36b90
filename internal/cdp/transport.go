// Package cdp supplies the concrete request/response capability that the
// snapshot engine (internal/snapshot) consumes as an abstract Transport.
// internal/snapshot imports this package only for the Transport interface
// declared here and never uses the concrete Session, per the spec's
// explicit exclusion of CDP transport from the snapshot engine's concerns.
package cdp

import (
	"context"
	"encoding/json"
	"fmt"
)

// Error mirrors a CDP error payload.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

// Transport is the single synchronous request/response capability the
// snapshot engine requires: send a CDP method and get its JSON result, or
// evaluate a JavaScript expression in the page and get its JSON value.
//
// Send fails with a transport error on any underlying failure. Eval
// returns result.value when present, else result.description as a JSON
// string, else JSON null — never an error for a successful round trip
// that merely evaluated to something unparseable.
type Transport interface {
	Send(ctx context.Context, method string, params any) (json.RawMessage, error)
	Eval(ctx context.Context, expression string) (json.RawMessage, error)
}
