// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Status is the outcome the server reports inside a response envelope.
type Status string

const (
	StatusSuccess      Status = "success"
	StatusUnauthorized Status = "unauthorized"
	StatusError        Status = "error"
)

// Reason is an optional human-readable failure reason carried in the
// "message" or "error" field of an envelope. JSON strings are kept verbatim;
// any other non-null JSON value is kept as its compact JSON text.
type Reason struct {
	Value string
	Valid bool
}

// Text returns a present Reason.
func Text(s string) Reason { return Reason{Value: s, Valid: true} }

// Truthy reports whether the reason is present and non-empty.
func (r Reason) Truthy() bool { return r.Valid && r.Value != "" }

// Text returns the reason, or "" when it is absent.
func (r Reason) Text() string {
	if !r.Valid {
		return ""
	}
	return r.Value
}

// UnmarshalJSON treats null, false, zero and the empty string as absent,
// the way a falsy value is skipped when picking a message.
func (r *Reason) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if isFalsy(b) {
		*r = Reason{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = Text(s)
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}
	*r = Text(buf.String())
	return nil
}

func (r Reason) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// Pagination describes one page of a list endpoint.
type Pagination struct {
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size,omitempty"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages,omitempty"`
	Next       *string `json:"next,omitempty"`
	Previous   *string `json:"previous,omitempty"`
}

// Envelope is the shape every wall API endpoint answers with.
// Data is meaningful only when Status is StatusSuccess.
//
// Decoding is tolerant: a status that is not a JSON string is kept as its
// JSON text (an unexpected status), and data and pagination are only decoded
// for successful answers. A pagination block that cannot be read is dropped.
type Envelope[T any] struct {
	Status     Status      `json:"status"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    Reason      `json:"message,omitzero"`
	Error      Reason      `json:"error,omitzero"`
}

func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Status     json.RawMessage `json:"status"`
		Data       json.RawMessage `json:"data"`
		Pagination json.RawMessage `json:"pagination"`
		Message    Reason          `json:"message"`
		Error      Reason          `json:"error"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*e = Envelope[T]{Status: statusOf(raw.Status), Message: raw.Message, Error: raw.Error}
	if e.Status != StatusSuccess {
		return nil
	}
	if !isNull(raw.Data) {
		if err := json.Unmarshal(raw.Data, &e.Data); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	if !isNull(raw.Pagination) {
		var p Pagination
		if err := json.Unmarshal(raw.Pagination, &p); err == nil {
			e.Pagination = &p
		}
	}
	return nil
}

// UnmarshalJSON accepts counts sent as numbers or numeric strings.
func (p *Pagination) UnmarshalJSON(b []byte) error {
	var raw struct {
		Page       json.RawMessage `json:"page"`
		PageSize   json.RawMessage `json:"page_size"`
		Total      json.RawMessage `json:"total"`
		TotalPages json.RawMessage `json:"total_pages"`
		Next       Reason          `json:"next"`
		Previous   Reason          `json:"previous"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = Pagination{
		Page:       intOf(raw.Page),
		PageSize:   intOf(raw.PageSize),
		Total:      intOf(raw.Total),
		TotalPages: intOf(raw.TotalPages),
	}
	if raw.Next.Truthy() {
		p.Next = &raw.Next.Value
	}
	if raw.Previous.Truthy() {
		p.Previous = &raw.Previous.Value
	}
	return nil
}

func statusOf(b json.RawMessage) Status {
	b = bytes.TrimSpace(b)
	if isNull(b) {
		return ""
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return Status(s)
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return Status(b)
	}
	return Status(buf.String())
}

// intOf reads a JSON number or numeric string. Anything else is zero.
func intOf(b json.RawMessage) int {
	b = bytes.TrimSpace(b)
	if isNull(b) {
		return 0
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return 0
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func isNull(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

func isFalsy(b []byte) bool {
	if isNull(b) || bytes.Equal(b, []byte("false")) || bytes.Equal(b, []byte(`""`)) {
		return true
	}
	if b[0] == '-' || (b[0] >= '0' && b[0] <= '9') {
		f, err := strconv.ParseFloat(string(b), 64)
		return err == nil && f == 0
	}
	return false
}
