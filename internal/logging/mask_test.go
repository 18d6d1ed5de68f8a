// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Authorization header",
			input:    "Authorization: Bearer abc.def-123",
			expected: "Authorization: Bearer ***",
		},
		{
			name:     "Password parameter",
			input:    "password=secret123",
			expected: "password=***",
		},
		{
			name:     "Password in JSON body",
			input:    `{"username":"ann","password":"hunter2"}`,
			expected: `{"username":"ann","password":"***"}`,
		},
		{
			name:     "New password in JSON body",
			input:    `{"token":"x","new_password":"hunter2"}`,
			expected: `{"token":"***","new_password":"***"}`,
		},
		{
			name:     "Token pair in JSON body",
			input:    `{"access":"a1","refresh":"r1"}`,
			expected: `{"access":"***","refresh":"***"}`,
		},
		{
			name:     "Bare JWT",
			input:    "got eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyX2lkIjo0Mn0.c2ln back",
			expected: "got *** back",
		},
		{
			name:     "Nothing to mask",
			input:    "GET /api/wall/walls/list/?page=1",
			expected: "GET /api/wall/walls/list/?page=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}
