package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
)

func testCtlConfig(api string) *config.CtlConfig {
	return &config.CtlConfig{
		API:           api,
		Timeout:       2 * time.Second,
		TokenSignKey:  "sign-key",
		TokenIssuer:   "contactsync",
		TokenDuration: time.Hour,
	}
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, cfg *config.CtlConfig, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(testCtlConfig("http://localhost:8080"))
	require.NotNil(t, cmd)
	assert.Equal(t, "contactsyncctl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(testCtlConfig("http://localhost:8080"))
	commands := []string{"connect", "disconnect", "status", "pull", "push", "protect", "schedule", "unschedule", "events", "token", "version"}

	for _, name := range commands {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cfg := testCtlConfig("http://daemon:9000")
	cfg.Token = "env-token"
	cmd := NewRootCommand(cfg)

	api := cmd.PersistentFlags().Lookup("api")
	require.NotNil(t, api)
	assert.Equal(t, "http://daemon:9000", api.DefValue)

	token := cmd.PersistentFlags().Lookup("token")
	require.NotNil(t, token)
	assert.Equal(t, "env-token", token.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, testCtlConfig("http://localhost:8080"), "--format", "yaml", "version")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestConnectRequiresServer(t *testing.T) {
	_, err := execute(t, testCtlConfig("http://localhost:8080"), "connect", "-u", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server")
}

func TestArgsValidation(t *testing.T) {
	for _, name := range []string{"pull", "push", "protect", "status", "disconnect", "schedule", "unschedule"} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, testCtlConfig("http://localhost:8080"), name)
			assert.Error(t, err)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "failed", assert.AnError)))

	wrapped := WrapExitError(ExitFailure, "failed", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "failed: "+assert.AnError.Error(), wrapped.Error())
}
