package cli

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	myHTTP "github.com/tompatulpan/Contact-Manager-sub002/internal/handler/http"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/mock"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/service"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/utils"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

type staticVersion string

func (v staticVersion) GetAppVersion(context.Context) string { return string(v) }

func newDaemon(t *testing.T, auth myHTTP.AuthConfig) (*mock.MockSyncService, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sync := mock.NewMockSyncService(ctrl)
	h := myHTTP.NewHandler(&service.Services{SyncService: sync, AppInfoService: staticVersion("3.2.1")}, auth, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return sync, srv.URL
}

func TestConnectCommand(t *testing.T) {
	sync, api := newDaemon(t, myHTTP.AuthConfig{})
	sync.EXPECT().Connect(gomock.Any(), models.ConnectConfig{
		ConnectionID: "work",
		ServerURL:    "https://dav.example.com",
		Username:     "alice",
		Password:     "pw",
	}).Return(models.ConnectResult{
		Success: true,
		Connection: &models.Connection{
			ID:        "work",
			ServerURL: "https://dav.example.com",
			Capabilities: models.Capabilities{
				Flavor:               "baikal",
				ProtectionStrategy:   models.ProtectionServerSide,
				ReadWriteAddressBook: "default",
				ReadOnlyAddressBook:  "shared",
			},
			AddressBooks: []models.AddressBook{{Name: "default"}, {Name: "shared", ReadOnly: true}},
		},
	})

	out, err := execute(t, testCtlConfig(api), "connect", "--id", "work", "--server", "https://dav.example.com", "-u", "alice", "-p", "pw")

	require.NoError(t, err)
	assert.Contains(t, out, "connected work (https://dav.example.com)")
	assert.Contains(t, out, "flavor: baikal, protection: server-side")
	assert.Contains(t, out, "owned -> default, shared -> shared")
	assert.Contains(t, out, "address books: default, shared (read-only)")
}

func TestPullCommand_Text(t *testing.T) {
	sync, api := newDaemon(t, myHTTP.AuthConfig{})
	sync.EXPECT().Pull(gomock.Any(), "work").Return(models.PullResult{
		ConnectionID:           "work",
		Success:                true,
		Created:                2,
		Updated:                1,
		Failed:                 1,
		ServerDeletionsApplied: 1,
		ServerDeletionsSkipped: 1,
		Errors:                 []models.ContactError{{UID: "u9", Kind: models.ErrorKindInvalid, Message: "missing UID"}},
		Duration:               1500 * time.Millisecond,
	})

	out, err := execute(t, testCtlConfig(api), "pull", "work")

	require.NoError(t, err)
	assert.Contains(t, out, "pull work: created=2 updated=1 skipped=0 failed=1 orphans=0 deletions=1/2 (1.5s)")
	assert.Contains(t, out, "! u9 [invalid] missing UID")
}

func TestPullCommand_GuardIsFailure(t *testing.T) {
	sync, api := newDaemon(t, myHTTP.AuthConfig{})
	sync.EXPECT().Pull(gomock.Any(), "work").Return(models.PullResult{
		ConnectionID:    "work",
		Aborted:         true,
		DeletionAborted: true,
		AbortReason:     "empty enumeration",
		Error:           service.ErrDataIntegrityGuard.Error(),
	})

	out, err := execute(t, testCtlConfig(api), "--format", "json", "pull", "work")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var got models.PullResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.DeletionAborted)
	assert.Equal(t, "empty enumeration", got.AbortReason)
}

func TestPushAndProtectCommands(t *testing.T) {
	sync, api := newDaemon(t, myHTTP.AuthConfig{})
	sync.EXPECT().PushAll(gomock.Any(), "work").Return(models.BatchResult{ConnectionID: "work", Success: true, Total: 3, Pushed: 2, Skipped: 1})
	sync.EXPECT().Protect(gomock.Any(), "work").Return(models.ProtectionResult{ConnectionID: "work", Success: true, NoOp: true})

	out, err := execute(t, testCtlConfig(api), "push", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "push work: total=3 pushed=2 skipped=1 failed=0")

	out, err = execute(t, testCtlConfig(api), "protect", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to do")
}

func TestScheduleCommands(t *testing.T) {
	sync, api := newDaemon(t, myHTTP.AuthConfig{})
	sync.EXPECT().StartScheduledSync(gomock.Any(), "work", models.Schedule{
		PullInterval:       time.Minute,
		PushInterval:       2 * time.Minute,
		PushOffset:         10 * time.Second,
		ProtectionInterval: -time.Second,
	}).Return(models.OperationResult{Success: true})
	sync.EXPECT().StopScheduledSync(gomock.Any(), "work").Return(models.OperationResult{Success: true})

	out, err := execute(t, testCtlConfig(api), "schedule", "work", "--pull", "1m", "--push", "2m", "--push-offset", "10s", "--protection=-1s")
	require.NoError(t, err)
	assert.Equal(t, "schedule work: ok\n", out)

	out, err = execute(t, testCtlConfig(api), "unschedule", "work")
	require.NoError(t, err)
	assert.Equal(t, "unschedule work: ok\n", out)
}

func TestStatusCommand_NotConnected(t *testing.T) {
	sync, api := newDaemon(t, myHTTP.AuthConfig{})
	sync.EXPECT().GetStatus(gomock.Any(), "gone").Return(models.ConnectionStatus{
		ConnectionID: "gone",
		LastError:    service.ErrConnectionNotFound.Error(),
	})

	out, err := execute(t, testCtlConfig(api), "status", "gone")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "gone: not connected")
	assert.Contains(t, out, "error: connection not found")
}

func TestDisconnectCommand(t *testing.T) {
	sync, api := newDaemon(t, myHTTP.AuthConfig{})
	sync.EXPECT().Disconnect(gomock.Any(), "work").Return(models.OperationResult{Success: true})

	out, err := execute(t, testCtlConfig(api), "disconnect", "work")
	require.NoError(t, err)
	assert.Equal(t, "disconnect work: ok\n", out)
}

func TestEventsCommand(t *testing.T) {
	sync, api := newDaemon(t, myHTTP.AuthConfig{})

	events := make(chan models.Event, 2)
	events <- models.Event{Type: models.EventSharedContactCorrected, ConnectionID: "work", DisplayName: "Ada"}
	close(events)
	sync.EXPECT().Subscribe(gomock.Any()).Return((<-chan models.Event)(events), func() {})

	out, err := execute(t, testCtlConfig(api), "events")

	require.NoError(t, err)
	assert.Contains(t, out, "shared_contact_corrected")
	assert.Contains(t, out, `work "Ada"`)
}

func TestTokenCommand_AuthenticatesAgainstDaemon(t *testing.T) {
	cfg := testCtlConfig("")
	sync, api := newDaemon(t, myHTTP.AuthConfig{SignKey: cfg.TokenSignKey, Issuer: cfg.TokenIssuer})
	cfg.API = api

	out, err := execute(t, cfg, "--format", "json", "token", "--operator", "ops")
	require.NoError(t, err)

	var tok tokenOutput
	require.NoError(t, json.Unmarshal([]byte(out), &tok))
	assert.Equal(t, "ops", tok.Operator)

	parsed, err := utils.ValidateAndParseJWTToken(tok.Token, cfg.TokenSignKey, cfg.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, "ops", parsed.Operator)

	_, err = execute(t, cfg, "status", "work")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	sync.EXPECT().GetStatus(gomock.Any(), "work").Return(models.ConnectionStatus{ConnectionID: "work", Connected: true})
	out, err = execute(t, cfg, "--token", tok.Token, "status", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "work: connected")
}

func TestTokenCommand_RequiresKey(t *testing.T) {
	cfg := testCtlConfig("http://localhost:8080")
	cfg.TokenSignKey = ""

	_, err := execute(t, cfg, "token")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVersionCommand(t *testing.T) {
	_, api := newDaemon(t, myHTTP.AuthConfig{})

	out, err := execute(t, testCtlConfig(api), "version")
	require.NoError(t, err)
	assert.Equal(t, "3.2.1\n", out)
}

func TestUnreachableDaemon(t *testing.T) {
	srv := httptest.NewServer(nil)
	api := srv.URL
	srv.Close()

	_, err := execute(t, testCtlConfig(api), "pull", "work")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
