package server

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	s := httptest.NewServer(NewRouter(Greeting("hello-5f6c"), discardLog()))
	t.Cleanup(s.Close)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/foo/bar"},
		{http.MethodPost, "/submit"},
		{http.MethodDelete, "/a/../b"},
		{http.MethodPut, "//double"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, body := doRequest(t, tt.method, s.URL+tt.path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
			assert.Equal(t, "Hello from hello-5f6c", body)
		})
	}
}

func TestGreeting_rawRequestTargets(t *testing.T) {
	s := httptest.NewServer(NewRouter(Greeting("x"), discardLog()))
	t.Cleanup(s.Close)
	host := s.Listener.Addr().String()

	tests := []struct {
		name string
		line string
	}{
		{"connect authority form", "CONNECT example.com:443 HTTP/1.1"},
		{"options asterisk", "OPTIONS * HTTP/1.1"},
		{"absolute form", "GET http://other/abs HTTP/1.1"},
		{"encoded dot segments", "GET /%2e%2e/x HTTP/1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := net.Dial("tcp", host)
			require.NoError(t, err)
			t.Cleanup(func() { _ = conn.Close() })
			require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))

			_, err = fmt.Fprintf(conn, "%s\r\nHost: %s\r\nConnection: close\r\n\r\n", tt.line, host)
			require.NoError(t, err)
			resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, "Hello from x", string(body))
		})
	}
}
