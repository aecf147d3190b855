package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscoveryRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       DiscoveryRequest
		expectErr string
	}{
		{
			name: "Valid request",
			req:  DiscoveryRequest{Location: "Tokyo", Interests: []string{"culture"}},
		},
		{
			name:      "Missing location",
			req:       DiscoveryRequest{Interests: []string{"culture"}},
			expectErr: "location is required",
		},
		{
			name:      "Whitespace location",
			req:       DiscoveryRequest{Location: "   ", Interests: []string{"culture"}},
			expectErr: "location is required",
		},
		{
			name:      "Empty interests",
			req:       DiscoveryRequest{Location: "Tokyo", Interests: []string{}},
			expectErr: "interests must not be empty",
		},
		{
			name:      "Nil interests",
			req:       DiscoveryRequest{Location: "Tokyo"},
			expectErr: "interests must not be empty",
		},
		{
			name:      "Blank interest value",
			req:       DiscoveryRequest{Location: "Tokyo", Interests: []string{"culture", " "}},
			expectErr: "interests must not contain empty values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.expectErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectErr)
			}
		})
	}
}
