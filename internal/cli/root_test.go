package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/courier/internal/adapters/progress"
	"github.com/trebuchet-org/courier/internal/app"
	"github.com/trebuchet-org/courier/internal/config"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/usecase"
)

func TestNeedsApp(t *testing.T) {
	root := NewRootCmd()

	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "run", args: []string{"run"}, expected: true},
		{name: "tui", args: []string{"tui"}, expected: true},
		{name: "config", args: []string{"config"}, expected: true},
		{name: "config set", args: []string{"config", "set"}, expected: true},
		{name: "wallets", args: []string{"wallets"}, expected: true},
		{name: "version", args: []string{"version"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, err := root.Find(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, needsApp(cmd))
		})
	}

	t.Run("root without subcommand", func(t *testing.T) {
		assert.False(t, needsApp(root))
	})
}

func TestRootCmd_Groups(t *testing.T) {
	root := NewRootCmd()

	groups := map[string]string{}
	for _, c := range root.Commands() {
		groups[c.Name()] = c.GroupID
	}

	assert.Equal(t, "main", groups["tui"])
	assert.Equal(t, "main", groups["run"])
	assert.Equal(t, "management", groups["config"])
	assert.Equal(t, "management", groups["wallets"])
	assert.Equal(t, "", groups["version"])

	for _, name := range []string{"data-dir", "secrets", "proxies", "networks", "log-level", "log-cap", "secret-policy", "bridge-allowance", "swap-allowance"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionCmd(t *testing.T) {
	config.SetBuildFlags("1.2.3", "abc123", "2025-01-01")
	t.Cleanup(func() { config.SetBuildFlags("dev", "unknown", "unknown") })

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "courier version 1.2.3 (commit abc123, built 2025-01-01)\n", out.String())
}

func TestParseSetArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    usecase.SetConfigParams
		wantErr string
	}{
		{
			name: "positional bridge and swap",
			args: []string{"2", "3"},
			want: usecase.SetConfigParams{Bridge: "2", Swap: "3"},
		},
		{
			name: "positional values are passed through for lenient parsing",
			args: []string{"abc", "0"},
			want: usecase.SetConfigParams{Bridge: "abc", Swap: "0"},
		},
		{
			name: "key value",
			args: []string{"swap", "4"},
			want: usecase.SetConfigParams{Swap: "4"},
		},
		{
			name: "key value pairs with aliases",
			args: []string{"bridgeRepetitions", "5", "swap-repetitions", "6"},
			want: usecase.SetConfigParams{Bridge: "5", Swap: "6"},
		},
		{
			name: "key=value",
			args: []string{"bridge=1", "swap=2"},
			want: usecase.SetConfigParams{Bridge: "1", Swap: "2"},
		},
		{
			name:    "missing value",
			args:    []string{"bridge"},
			wantErr: "missing value for bridge",
		},
		{
			name:    "unknown key",
			args:    []string{"gas=5"},
			wantErr: "unknown config key: gas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSetArgs(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressSink(t *testing.T) {
	root := NewRootCmd()

	wallets, _, err := root.Find([]string{"wallets"})
	require.NoError(t, err)
	assert.IsType(t, &progress.SpinnerSink{}, progressSink(wallets))

	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	assert.IsType(t, &progress.NopSink{}, progressSink(run))
}

// newTestApp wires a real session against files in a temp dir.
func newTestApp(t *testing.T) *app.App {
	t.Helper()
	dir := t.TempDir()

	v := config.SetupViper(nil)
	v.Set("data_dir", filepath.Join(dir, ".courier"))
	v.Set("secrets", filepath.Join(dir, "private_keys.txt"))
	v.Set("proxies", filepath.Join(dir, "proxies.txt"))
	v.Set("networks", filepath.Join(dir, "courier.toml"))
	v.Set("log_stderr", false)

	a, err := app.InitApp(v, progress.NewNopSink())
	require.NoError(t, err)
	return a
}

func TestRunActivity_NoAccounts(t *testing.T) {
	a := newTestApp(t)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runActivity(cmd, a, nil)
	require.ErrorIs(t, err, domain.ErrNoAccounts)
	assert.Empty(t, out.String())
	assert.False(t, a.Runner.State().Running)

	var messages []string
	for _, e := range a.Logs.Entries() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "activity not started")
}

func TestGetApp(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := getApp(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app not initialized")

	a := newTestApp(t)
	cmd.SetContext(context.WithValue(context.Background(), appKey, a))
	got, err := getApp(cmd)
	require.NoError(t, err)
	assert.Same(t, a, got)
}
