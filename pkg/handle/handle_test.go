// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/biolink/pkg/handle"
)

/*
TestFrom covers case folding, accent removal and charset filtering.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already_valid", "nova", "nova"},
		{"uppercase", "NoVa", "nova"},
		{"accents", "Zoë_Café", "zoe_cafe"},
		{"spaces_and_symbols", "  my name!  ", "myname"},
		{"hyphen_dropped", "dev-42", "dev42"},
		{"emoji_dropped", "🐺wolf", "wolf"},
		{"cyrillic_dropped", "волк", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handle.From(tt.input))
		})
	}
}
