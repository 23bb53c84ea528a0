package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/handler"
	myHTTP "github.com/tompatulpan/Contact-Manager-sub002/internal/handler/http"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/service"
)

type versionOnly struct{}

func (versionOnly) GetAppVersion(context.Context) string { return "9.9.9" }

func newTestHandlers() *handler.Handlers {
	services := &service.Services{AppInfoService: versionOnly{}}
	return &handler.Handlers{HTTP: myHTTP.NewHandler(services, myHTTP.AuthConfig{}, logger.Nop())}
}

func TestNewServer_NoServers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.DaemonServer
	}{
		{"nil handlers", nil, config.DaemonServer{HTTPAddress: ":8080"}},
		{"no HTTP handler", &handler.Handlers{}, config.DaemonServer{HTTPAddress: ":8080"}},
		{"no address", newTestHandlers(), config.DaemonServer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			assert.Nil(t, s)
			assert.ErrorIs(t, err, errNoServersAreCreated)
			if tt.cfg.HTTPAddress == "" {
				assert.ErrorIs(t, err, errNoControlAddress)
			}
		})
	}
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.DaemonServer{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.DaemonServer{HTTPAddress: "127.0.0.1:99999"}, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error starting HTTP server")
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	h := newHTTPServer(newTestHandlers().HTTP.Init(), config.DaemonServer{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, h.listen())

	served := make(chan error, 1)
	go func() { served <- h.serve() }()

	resp, err := http.Get("http://" + h.Addr() + "/api/version/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "9.9.9", string(body))

	h.Shutdown(context.Background())
	assert.NoError(t, <-served)
}

func TestHTTPServer_ShutdownReleasesStreams(t *testing.T) {
	entered := make(chan struct{})
	stream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		close(entered)
		<-r.Context().Done()
	})

	h := newHTTPServer(stream, config.DaemonServer{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, h.listen())
	go func() { _ = h.serve() }()

	go func() {
		resp, err := http.Get("http://" + h.Addr() + "/stream")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler was not reached")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	h.Shutdown(ctx)
	assert.Less(t, time.Since(start), time.Second)
	assert.NoError(t, ctx.Err())
}
