// pkg/ciq_io/secure_input_test.go

package ciq_io

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordInput(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid password", password: "correct horse battery staple"},
		{name: "empty", password: "", wantErr: "cannot be empty"},
		{name: "too long", password: strings.Repeat("a", MaxPasswordLength+1), wantErr: "too long"},
		{name: "control characters", password: "abc\x01def", wantErr: "control characters"},
		{name: "tab is allowed", password: "ab\tcd"},
		{name: "invalid utf-8", password: string([]byte{0xff, 0xfe, 0x61}), wantErr: "invalid UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordInput(tt.password, "password")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
