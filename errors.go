package multitouch

import "fmt"

// Phase names the router operation during which a handler ran.
type Phase uint8

const (
	PhaseStart      Phase = iota // OnStart from HandleTouchStart
	PhaseMove                    // OnMove from HandleTouchMove
	PhaseEnd                     // OnEnd from HandleTouchEnd
	PhaseUnregister              // OnEnd forced by Unregister
	PhaseDestroy                 // OnEnd forced by Destroy
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseUnregister:
		return "unregister"
	case PhaseDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// HandlerError reports a handler that panicked. The router recovers the
// panic, logs it and keeps going; an error hook set with
// Router.SetErrorHandler receives the same value.
type HandlerError struct {
	Phase   Phase
	TouchID int
	Element Element
	Value   any // value passed to panic
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("multitouch: %s handler for touch %d panicked: %v", e.Phase, e.TouchID, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *HandlerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
