package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	var buf bytes.Buffer

	svc, err := NewAppInfoService(config.DaemonApp{}, logger.NewLoggerWithWriter("daemon", &buf))

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	assert.Contains(t, buf.String(), "daemon version is empty")
}

func TestAppInfoService_GetAppVersion(t *testing.T) {
	tests := []string{"1.0.0", "0.0.1", "v1.2.3-beta+build.42"}

	for _, version := range tests {
		t.Run(version, func(t *testing.T) {
			svc, err := NewAppInfoService(config.DaemonApp{Version: version}, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.DaemonApp{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
