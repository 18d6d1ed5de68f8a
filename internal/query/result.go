// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// State tags a Result.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateAppError
	StateTransportError
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateAppError:
		return "app_error"
	case StateTransportError:
		return "transport_error"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition follows this state.
func (s State) Terminal() bool { return s != StateLoading }

// Result is one state transition of a query call.
//
//   - StateLoading: nothing else is set.
//   - StateSuccess: Data and Envelope are set; Pagination when the endpoint paginates.
//   - StateAppError: Status is the server status; Message holds the resolved reason.
//   - StateTransportError: Err holds the cause; Message is NetworkErrorMessage.
//   - StateCancelled: Err may hold the transport cause, if any.
type Result[T any] struct {
	State      State
	Data       T
	Envelope   *Envelope[T]
	Pagination *Pagination
	Status     Status
	Message    Reason
	Err        error
}

// Failed reports whether the result is an application or transport failure.
func (r Result[T]) Failed() bool {
	return r.State == StateAppError || r.State == StateTransportError
}
