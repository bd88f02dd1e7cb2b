package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/logging"
	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

func TestIsValidOrigin(t *testing.T) {
	s := NewServer(entities.ServerConfig{
		Host:        "0.0.0.0",
		Port:        8000,
		CORSOrigins: []string{"https://slides.example.com"},
	}, "", logging.NewNop())

	tests := []struct {
		name   string
		host   string
		origin string
		want   bool
	}{
		{name: "no origin", host: "10.0.0.5:8000", origin: "", want: true},
		{name: "same origin", host: "10.0.0.5:8000", origin: "http://10.0.0.5:8000", want: true},
		{name: "localhost", host: "10.0.0.5:8000", origin: "http://localhost:3000", want: true},
		{name: "loopback ip", host: "10.0.0.5:8000", origin: "http://127.0.0.1:9999", want: true},
		{name: "ipv6 loopback", host: "10.0.0.5:8000", origin: "http://[::1]:8000", want: true},
		{name: "configured origin", host: "10.0.0.5:8000", origin: "https://slides.example.com", want: true},
		{name: "foreign origin", host: "10.0.0.5:8000", origin: "https://evil.example.com", want: false},
		{name: "malformed", host: "10.0.0.5:8000", origin: "http://%zz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/ws", nil)
			r.Host = tt.host
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, s.isValidOrigin(r))
		})
	}
}

func TestIsLoopback(t *testing.T) {
	assert.True(t, isLoopback("localhost"))
	assert.True(t, isLoopback("127.0.0.1"))
	assert.True(t, isLoopback("::1"))
	assert.False(t, isLoopback("192.168.1.10"))
	assert.False(t, isLoopback("example.com"))
}
