package main

import (
	"testing"

	"wordlock/internal"

	"github.com/stretchr/testify/require"
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		entropy  int
		strength int
		secure   bool
		want     internal.Request
	}{
		{"defaults to 80 bits", 0, 0, 0, false, internal.MinimumEntropy{Bits: 80}},
		{"explicit word count", 6, 0, 0, false, internal.ExactWords{N: 6}},
		{"explicit entropy", 0, 128, 0, false, internal.MinimumEntropy{Bits: 128}},
		{"strength steps", 0, 0, 2, false, internal.Strength{Steps: 2}},
		{"secure floors the default", 0, 0, 0, true, internal.MinimumEntropy{Bits: 105}},
		{"secure floors a low target", 0, 90, 0, true, internal.MinimumEntropy{Bits: 105}},
		{"secure passes a high target through", 0, 160, 0, true, internal.MinimumEntropy{Bits: 160}},
		{"secure floors one strength step", 0, 0, 1, true, internal.MinimumEntropy{Bits: 105}},
		{"secure keeps two strength steps", 0, 0, 2, true, internal.Strength{Steps: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildRequest(tt.words, tt.entropy, tt.strength, tt.secure))
		})
	}
}

func TestPickList(t *testing.T) {
	wl, warnings, err := pickList("s", "")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 1296, wl.Len())

	_, _, err = pickList("nope", "")
	require.Error(t, err)
}
