package cli

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envlink/envlink/cliout"
	"github.com/envlink/envlink/notify"
	"github.com/envlink/envlink/testutil"
	"github.com/envlink/envlink/version"
)

// newRoot builds a fresh command tree pointing --config at an empty temp
// location so user configuration never leaks into tests.
func newRoot(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cliout.SetColorEnabled(false)

	root := New(version.New("envlink"))
	cfg := filepath.Join(t.TempDir(), "envlink.yaml")
	root.SetArgs(append([]string{"--config", cfg}, args...))
	return root
}

type fakeNotifier struct {
	sent []notify.Notification
	err  error
}

func (f *fakeNotifier) Send(n notify.Notification) error {
	f.sent = append(f.sent, n)
	return f.err
}

func TestOpenDryRunPrintsURL(t *testing.T) {
	path := testutil.WriteTempFile(t, "redirect.html",
		`<a href="http://example.com/path">go</a>`)

	root := newRoot(t, "open", "--dry-run", path)
	out := testutil.CaptureOutput(t, root.Execute)

	assert.Equal(t, "http://example.com/path\n", out)
}

func TestOpenFileURI(t *testing.T) {
	path := testutil.WriteTempFile(t, "redirect.html",
		`<a href="http://example.com/uri">go</a>`)

	root := newRoot(t, "open", "--dry-run", "file://"+path)
	out := testutil.CaptureOutput(t, root.Execute)

	assert.Equal(t, "http://example.com/uri\n", out)
}

func TestOpenNoMatchExitsZero(t *testing.T) {
	path := testutil.WriteTempFile(t, "plain.txt", "nothing here")

	root := newRoot(t, "open", path)

	var execErr error
	out := testutil.CaptureOutput(t, func() error {
		execErr = root.Execute()
		return execErr
	})

	require.NoError(t, execErr)
	assert.Equal(t, 0, ExitCode(execErr))
	assert.Contains(t, out, "no URL found")
}

func TestOpenMissingFileFails(t *testing.T) {
	root := newRoot(t, "open", filepath.Join(t.TempDir(), "missing.html"))

	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
}

func TestOpenTargetNoneLaunchesNothing(t *testing.T) {
	path := testutil.WriteTempFile(t, "redirect.html",
		`<a href="http://example.com/silent">go</a>`)

	root := newRoot(t, "open", "--browser", "none", path)
	out := testutil.CaptureOutput(t, root.Execute)

	assert.Contains(t, out, "opened http://example.com/silent")
}

func TestOpenInvalidTarget(t *testing.T) {
	path := testutil.WriteTempFile(t, "redirect.html",
		`<a href="http://example.com">go</a>`)

	root := newRoot(t, "open", "--browser", "chrome", path)

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid browser target")
}

func TestOpenNotifyFlag(t *testing.T) {
	restore := notifier
	defer func() { notifier = restore }()
	fake := &fakeNotifier{}
	notifier = fake

	path := testutil.WriteTempFile(t, "redirect.html",
		`<a href="http://example.com/notify">go</a>`)

	root := newRoot(t, "open", "--browser", "none", "--notify", path)
	_ = testutil.CaptureOutput(t, root.Execute)

	require.Len(t, fake.sent, 1)
	assert.Equal(t, "envlink", fake.sent[0].Title)
	assert.Contains(t, fake.sent[0].Message, "http://example.com/notify")
}

func TestOpenNotificationFailureIsNotFatal(t *testing.T) {
	restore := notifier
	defer func() { notifier = restore }()
	notifier = &fakeNotifier{err: errors.New("no daemon")}

	path := testutil.WriteTempFile(t, "redirect.html",
		`<a href="http://example.com">go</a>`)

	root := newRoot(t, "open", "--browser", "none", "--notify", path)

	var execErr error
	_ = testutil.CaptureOutput(t, func() error {
		execErr = root.Execute()
		return execErr
	})
	assert.NoError(t, execErr)
}

func TestRunRestoresEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sh not available on windows")
	}

	const key = "ENVLINK_CLI_TEST_RUN"
	t.Setenv(key, "original")

	root := newRoot(t, "run", "-e", key+"=scoped", "--",
		"sh", "-c", `test "$`+key+`" = scoped`)

	require.NoError(t, root.Execute())
	assert.Equal(t, "original", os.Getenv(key))
}

func TestRunPropagatesChildExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sh not available on windows")
	}

	const key = "ENVLINK_CLI_TEST_FAIL"
	t.Setenv(key, "original")

	root := newRoot(t, "run", "-e", key+"=scoped", "--", "sh", "-c", "exit 4")

	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, 4, ExitCode(err))

	// Restoration happens even when the child fails.
	assert.Equal(t, "original", os.Getenv(key))
}

func TestRunInvalidOverride(t *testing.T) {
	root := newRoot(t, "run", "-e", "MISSING_EQUALS", "--", "true")

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected KEY=VALUE")
}

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:    "single entry",
			entries: []string{"FOO=bar"},
			want:    map[string]string{"FOO": "bar"},
		},
		{
			name:    "value containing equals",
			entries: []string{"URL=http://x?a=b"},
			want:    map[string]string{"URL": "http://x?a=b"},
		},
		{
			name:    "empty value allowed",
			entries: []string{"FOO="},
			want:    map[string]string{"FOO": ""},
		},
		{
			name:    "no equals",
			entries: []string{"FOO"},
			wantErr: true,
		},
		{
			name:    "empty key",
			entries: []string{"=bar"},
			wantErr: true,
		},
		{
			name:    "nil input",
			entries: nil,
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOverrides(tt.entries)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
	assert.Equal(t, 7, ExitCode(&exitError{code: 7, err: errors.New("child")}))
}

func TestVersionSubcommandWired(t *testing.T) {
	root := newRoot(t, "version", "--quiet")
	out := testutil.CaptureOutput(t, root.Execute)
	assert.Equal(t, "0.0.0-dev\n", strings.TrimLeft(out, "\n"))
}
