// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package query runs wall API queries and reconciles their outcome into UI
// state. Every screen of the CLI goes through it.
//
// A query call moves through idle → loading → one terminal state: success,
// application error (the server answered with a non-success status),
// transport error (no usable answer) or cancelled (the caller aborted the
// input's Signal before the call settled). Execute returns the terminal state
// as a Result; Go streams the loading and terminal transitions; Apply commits
// a transition to a Callbacks bundle; Fetch does all of it in one call.
package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wall/cli/internal/logging"
)

// NetworkErrorMessage is the message committed for every transport failure.
const NetworkErrorMessage = "a network error occurred"

// ErrNoEnvelope is the transport error for a query that returned neither an
// envelope nor an error.
var ErrNoEnvelope = errors.New("query returned no response")

// Query is an endpoint call. It returns the decoded envelope, or an error
// when no well-formed response could be obtained.
type Query[P, T any] func(ctx context.Context, payload P) (*Envelope[T], error)

// Input is the per-call payload plus an optional cancellation signal.
type Input[P any] struct {
	Payload P
	Signal  *Signal
}

// Options tunes how a result is committed and logged.
type Options struct {
	// FullResponse commits the whole envelope through SetData instead of
	// just its data field.
	FullResponse bool
	// Name identifies the query in log records.
	Name   string
	Logger logging.Logger
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}

// Callbacks is the state a UI surface exposes to the executor.
// SetPagination is optional; the others are expected but nil ones are skipped.
type Callbacks struct {
	SetFetching    func(bool)
	SetFetchingErr func(bool)
	SetData        func(any)
	SetErrMsg      func(string)
	SetPagination  func(Pagination)
}

// Execute invokes q and returns its terminal Result. It never returns a
// Loading result and never panics because of q.
func Execute[P, T any](ctx context.Context, q Query[P, T], in Input[P], opts Options) Result[T] {
	log := opts.logger()
	start := time.Now()

	env, err := invoke(ctx, q, in.Payload)
	res := settle(env, err, in.Signal)

	args := []any{"query", opts.Name, "state", res.State.String(), "elapsed", time.Since(start)}
	if res.Status != "" {
		args = append(args, "status", string(res.Status))
	}
	switch res.State {
	case StateTransportError:
		log.Warn(ctx, "query failed", append(args, "error", logging.Mask(res.Err.Error()))...)
	case StateAppError:
		log.Debug(ctx, "query rejected", append(args, "message", logging.Mask(res.Message.Value))...)
	default:
		log.Debug(ctx, "query settled", args...)
	}
	return res
}

// Go runs q on its own goroutine. The returned channel yields a Loading
// result immediately, then the terminal result, then is closed.
func Go[P, T any](ctx context.Context, q Query[P, T], in Input[P], opts Options) <-chan Result[T] {
	ch := make(chan Result[T], 2)
	ch <- Result[T]{State: StateLoading}
	go func() {
		defer close(ch)
		ch <- Execute(ctx, q, in, opts)
	}()
	return ch
}

// Fetch drives cb through a whole call: loading, the query, the outcome and
// the final fetching reset. It blocks until q settles and returns the
// terminal result.
func Fetch[P, T any](ctx context.Context, cb Callbacks, q Query[P, T], in Input[P], opts Options) Result[T] {
	Apply(Result[T]{State: StateLoading}, cb, opts)
	res := Execute(ctx, q, in, opts)
	Apply(res, cb, opts)
	return res
}

// Apply commits one transition to cb.
//
// Loading sets fetching and clears fetchingErr. Every terminal state ends
// with fetching=false; a cancelled result commits nothing else.
func Apply[T any](r Result[T], cb Callbacks, opts Options) {
	switch r.State {
	case StateLoading:
		call(cb.SetFetching, true)
		call(cb.SetFetchingErr, false)
		return
	case StateSuccess:
		if r.Pagination != nil && cb.SetPagination != nil {
			cb.SetPagination(*r.Pagination)
		}
		if cb.SetData != nil {
			if opts.FullResponse {
				cb.SetData(r.Envelope)
			} else {
				cb.SetData(r.Data)
			}
		}
	case StateAppError, StateTransportError:
		call(cb.SetFetchingErr, true)
		call(cb.SetErrMsg, r.Message.Value)
	}
	call(cb.SetFetching, false)
}

func call[V any](f func(V), v V) {
	if f != nil {
		f(v)
	}
}

func invoke[P, T any](ctx context.Context, q Query[P, T], payload P) (env *Envelope[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			env, err = nil, fmt.Errorf("query panicked: %v", r)
		}
	}()
	return q(ctx, payload)
}

// settle classifies a settled call. The signal is consulted first so an
// aborted call commits nothing, whichever way it settled.
func settle[T any](env *Envelope[T], err error, sig *Signal) Result[T] {
	if sig.Aborted() {
		return Result[T]{State: StateCancelled, Err: err}
	}
	if err == nil && env == nil {
		err = ErrNoEnvelope
	}
	if err != nil {
		return Result[T]{State: StateTransportError, Message: Text(NetworkErrorMessage), Err: err}
	}

	switch env.Status {
	case StatusSuccess:
		return Result[T]{
			State:      StateSuccess,
			Data:       env.Data,
			Envelope:   env,
			Pagination: env.Pagination,
			Status:     env.Status,
		}
	case StatusUnauthorized, StatusError:
		return Result[T]{State: StateAppError, Status: env.Status, Message: resolveReason(env.Message, env.Error)}
	default:
		return Result[T]{State: StateAppError, Status: env.Status, Message: env.Error}
	}
}

// resolveReason picks the first non-empty reason, message before error.
// When neither is non-empty the reason is absent.
func resolveReason(message, errField Reason) Reason {
	if message.Truthy() {
		return message
	}
	if errField.Truthy() {
		return errField
	}
	return Reason{}
}
