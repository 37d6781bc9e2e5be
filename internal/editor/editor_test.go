package editor

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"command and flag", "code --wait", []string{"code", "--wait"}},
		{
			"double quoted path",
			`"/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code" --wait`,
			[]string{"/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code", "--wait"},
		},
		{"single quoted argument", `emacs -nw 'a b'`, []string{"emacs", "-nw", "a b"}},
		{"extra whitespace", "  vim   -p  ", []string{"vim", "-p"}},
		{"windows path", `C:\Tools\vim.exe`, []string{`C:\Tools\vim.exe`}},
		{
			"double quoted windows path",
			`"C:\Program Files\Microsoft VS Code\bin\code.cmd" --wait`,
			[]string{`C:\Program Files\Microsoft VS Code\bin\code.cmd`, "--wait"},
		},
		{"single quoted windows path", `'C:\My Tools\hx.exe' -v`, []string{`C:\My Tools\hx.exe`, "-v"}},
		{"apostrophe inside double quotes", `"C:\Bob's\vim.exe"`, []string{`C:\Bob's\vim.exe`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	for _, input := range []string{"", "   ", `code "unterminated`, `''`} {
		_, err := ParseCommand(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, serrors.IsCategory(err, serrors.CategoryConfig))
		assert.Contains(t, err.Error(), "Invalid editor command")
	}
}

func TestInferWaitBehavior(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		want    bool
	}{
		{"code", []string{"--wait"}, true},
		{"code", []string{"-w"}, true},
		{"code", nil, false},
		{"/usr/local/bin/Code-Insiders", []string{"-n", "--WAIT"}, true},
		{"open", []string{"-W"}, true},
		{"open", nil, false},
		{"cmd", []string{"/c", "start", "", "/WAIT"}, true},
		{"cmd", []string{"/c", "start"}, false},
		{"vim", nil, true},
		{"/usr/bin/nvim", nil, true},
		{"nano", nil, true},
		{"hx", nil, true},
		{"emacs", nil, true},
		{"VI", nil, true},
		{"xdg-open", nil, false},
		{"start", nil, false},
		{"some-unknown-editor", []string{"--wait"}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferWaitBehavior(tt.command, tt.args), "%s %v", tt.command, tt.args)
	}
}

func fakeResolver(env map[string]string, onPath []string, goos string) *Resolver {
	return &Resolver{
		Getenv: func(k string) string { return env[k] },
		LookPath: func(cmd string) (string, error) {
			for _, p := range onPath {
				if p == cmd {
					return "/usr/bin/" + cmd, nil
				}
			}
			return "", exec.ErrNotFound
		},
		GOOS: goos,
	}
}

func TestResolve_Precedence(t *testing.T) {
	env := map[string]string{
		EnvScratchEditor: "nvim -p",
		EnvVisual:        "code --wait",
		EnvEditor:        "nano",
	}
	r := fakeResolver(env, []string{"code"}, "linux")

	inv, err := r.Resolve("hx")
	require.NoError(t, err)
	assert.Equal(t, "hx", inv.Command)
	assert.True(t, inv.WaitsForExit)

	inv, err = r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Invocation{Command: "nvim", Args: []string{"-p"}, WaitsForExit: true, Label: "nvim"}, inv)

	delete(env, EnvScratchEditor)
	inv, err = r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "code", inv.Command)
	assert.Equal(t, []string{"--wait"}, inv.Args)
	assert.True(t, inv.WaitsForExit)

	delete(env, EnvVisual)
	inv, err = r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "nano", inv.Command)
}

func TestResolve_InvalidConfiguredCommand(t *testing.T) {
	r := fakeResolver(map[string]string{EnvVisual: `"broken`}, nil, "linux")
	_, err := r.Resolve("")
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryConfig))
}

func TestResolve_PlatformProbes(t *testing.T) {
	tests := []struct {
		name      string
		onPath    []string
		goos      string
		command   string
		waits     bool
		label     string
		wantError bool
	}{
		{name: "vs code preferred", onPath: []string{"code", "xdg-open"}, goos: "linux", command: "code", waits: true, label: "Visual Studio Code"},
		{name: "macOS open", onPath: []string{"open"}, goos: "darwin", command: "open", waits: true, label: "default macOS editor"},
		{name: "open ignored off macOS", onPath: []string{"open"}, goos: "linux", wantError: true},
		{name: "windows start", goos: "windows", command: "cmd", waits: true, label: "default Windows editor"},
		{name: "linux xdg-open", onPath: []string{"xdg-open"}, goos: "linux", command: "xdg-open", waits: false, label: "default Linux editor"},
		{name: "nothing available", goos: "linux", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fakeResolver(map[string]string{}, tt.onPath, tt.goos)
			inv, err := r.Resolve("")
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, serrors.IsCategory(err, serrors.CategoryConfig))
				assert.Contains(t, err.Error(), "SCRATCH_EDITOR, VISUAL, or EDITOR")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.command, inv.Command)
			assert.Equal(t, tt.waits, inv.WaitsForExit)
			assert.Equal(t, tt.label, inv.Label)
			assert.Equal(t, tt.waits, InferWaitBehavior(inv.Command, inv.Args))
		})
	}
}

func TestResolve_ProbeArgsAreCopied(t *testing.T) {
	r := fakeResolver(map[string]string{}, []string{"code"}, "linux")
	inv, err := r.Resolve("")
	require.NoError(t, err)
	inv.Args[0] = "mutated"

	again, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, []string{"-n", "--wait"}, again.Args)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	errs := []error{
		serrors.EditorStartFailed("x", errors.New("nope")),
		serrors.EditorSignaled("killed"),
		serrors.EditorExitCode(1),
	}
	for _, err := range errs {
		assert.True(t, serrors.IsCategory(err, serrors.CategoryProcess))
	}
}
