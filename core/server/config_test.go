package server_test

import (
	"testing"
	"time"

	"product-builder/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"Default", "8080", false},
		{"Max", "65535", false},
		{"Zero", "0", true},
		{"TooLarge", "70000", true},
		{"NotNumber", "http", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestConfig_Durations(t *testing.T) {
	c := server.Config{Port: "9000", ReadTimeoutSeconds: 5, WriteTimeoutSeconds: 60}
	assert.Equal(t, ":9000", c.Address())
	assert.Equal(t, 5*time.Second, c.ReadTimeout())
	assert.Equal(t, time.Minute, c.WriteTimeout())
}
