package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

const homeIcon = `<svg viewBox="0 0 24 24"><path fill="#111" d="M3 10l9-7 9 7v10H3z"/></svg>`

// isolateEnv clears the variables convert reads so the host environment
// cannot leak into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvConcurrency, "")
	t.Setenv("SVGRN_NON_INTERACTIVE", "1")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// executeConvert runs convert under a root carrying the persistent flags.
func executeConvert(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := &cobra.Command{Use: "svgrn", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().BoolP("verbose", "v", false, "")
	root.PersistentFlags().String("log-format", logFormatText, "")
	root.AddCommand(newConvertCmd(&convertFlagValues{}))

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"convert"}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func parsedConvertCmd(t *testing.T, args ...string) (*cobra.Command, *convertFlagValues) {
	t.Helper()
	flags := &convertFlagValues{}
	cmd := newConvertCmd(flags)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, flags
}

func TestBuildConvertConfig_Defaults(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	cmd, flags := parsedConvertCmd(t)

	cfg, err := buildConvertConfig(cmd, flags, []string{dir}, false)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.SourcePath)
	assert.Empty(t, cfg.OutputDir)
	assert.Empty(t, cfg.ComponentName)
	assert.Equal(t, runtime.NumCPU(), cfg.Concurrency)
	assert.Equal(t, svgrn.ParserXML, cfg.Parser)
	assert.Equal(t, svgrn.DefaultOptions(), cfg.Options)
	assert.False(t, cfg.Force)
}

func TestBuildConvertConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".svgrn.yaml"), `
output: gen
concurrency: 2
parser: html
options:
  fill_prop: false
  rm_style: true
`)

	t.Run("project config over defaults", func(t *testing.T) {
		isolateEnv(t)
		cmd, flags := parsedConvertCmd(t)

		cfg, err := buildConvertConfig(cmd, flags, []string{dir}, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "gen"), cfg.OutputDir)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.Equal(t, svgrn.ParserHTML, cfg.Parser)
		assert.False(t, cfg.Options.FillProp)
		assert.True(t, cfg.Options.StripStyle)
		assert.True(t, cfg.Options.StrokeProp)
	})

	t.Run("environment over project config", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv(EnvOutputDir, "/env/out")
		t.Setenv(EnvConcurrency, "3")
		cmd, flags := parsedConvertCmd(t)

		cfg, err := buildConvertConfig(cmd, flags, []string{dir}, false)
		require.NoError(t, err)
		assert.Equal(t, "/env/out", cfg.OutputDir)
		assert.Equal(t, 3, cfg.Concurrency)
	})

	t.Run("flags over environment", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv(EnvOutputDir, "/env/out")
		cmd, flags := parsedConvertCmd(t, "-o", "/flag/out", "-j", "5", "--fill-prop", "--parser", "xml", "--rm-style=false")

		cfg, err := buildConvertConfig(cmd, flags, []string{dir}, false)
		require.NoError(t, err)
		assert.Equal(t, "/flag/out", cfg.OutputDir)
		assert.Equal(t, 5, cfg.Concurrency)
		assert.True(t, cfg.Options.FillProp)
		assert.False(t, cfg.Options.StripStyle)
		assert.Equal(t, svgrn.ParserXML, cfg.Parser)
	})
}

func TestBuildConvertConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("non numeric concurrency variable", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv(EnvConcurrency, "many")
		cmd, flags := parsedConvertCmd(t)

		_, err := buildConvertConfig(cmd, flags, []string{dir}, false)
		require.Error(t, err)
		assert.Equal(t, svgrn.ExitConfigError, svgrn.ExitCodeForError(err))
	})

	t.Run("unknown parser", func(t *testing.T) {
		isolateEnv(t)
		cmd, flags := parsedConvertCmd(t, "--parser", "sax")

		_, err := buildConvertConfig(cmd, flags, []string{dir}, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, svgrn.ErrInvalidConfig))
	})

	t.Run("zero concurrency", func(t *testing.T) {
		isolateEnv(t)
		cmd, flags := parsedConvertCmd(t, "-j", "0")

		_, err := buildConvertConfig(cmd, flags, []string{dir}, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, svgrn.ErrInvalidConfig))
	})

	t.Run("broken project config", func(t *testing.T) {
		isolateEnv(t)
		broken := t.TempDir()
		writeFile(t, filepath.Join(broken, ".svgrn.yaml"), "concurrency: [")
		cmd, flags := parsedConvertCmd(t)

		_, err := buildConvertConfig(cmd, flags, []string{broken}, false)
		require.Error(t, err)
		assert.Equal(t, svgrn.ExitConfigError, svgrn.ExitCodeForError(err))
	})
}

func TestConvertCmd_WritesDirectory(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "icons", "home.svg"), homeIcon)
	writeFile(t, filepath.Join(dir, "icons", "nav", "arrow-left.svg"), `<svg width="16" height="16"><path stroke="blue" d="M0 8h16"/></svg>`)
	out := filepath.Join(dir, "out")

	_, stderr, err := executeConvert(t, filepath.Join(dir, "icons"), "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "File written to -> "+filepath.Join(out, "Home.tsx"))
	assert.Contains(t, stderr, "2 written, 0 unchanged")

	body, err := os.ReadFile(filepath.Join(out, "nav", "ArrowLeft.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "export default function ArrowLeft(props: Props)")
	assert.Contains(t, string(body), `stroke={props.stroke || "blue"}`)

	_, stderr, err = executeConvert(t, filepath.Join(dir, "icons"), "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "0 written, 2 unchanged")
}

func TestConvertCmd_RefusesOverwriteWithoutForce(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "home.svg")
	writeFile(t, src, homeIcon)
	writeFile(t, filepath.Join(dir, "out", "Home.tsx"), "// keep me")

	_, stderr, err := executeConvert(t, src, "-o", filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Equal(t, svgrn.ExitOutputConflict, svgrn.ExitCodeForError(err))
	assert.Contains(t, stderr, "--force")

	_, _, err = executeConvert(t, src, "-o", filepath.Join(dir, "out"), "--force")
	require.NoError(t, err)
	body, err := os.ReadFile(filepath.Join(dir, "out", "Home.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "function Home")
}

func TestConvertCmd_SingleFileWithName(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "home.svg"), homeIcon)

	// extension is optional
	_, _, err := executeConvert(t, filepath.Join(dir, "home"), "HomeIcon", "-o", dir)
	require.NoError(t, err)

	body, err := os.ReadFile(filepath.Join(dir, "HomeIcon.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "export default function HomeIcon(props: Props)")
}

func TestConvertCmd_DryRun(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "home.svg"), homeIcon)

	stdout, _, err := executeConvert(t, filepath.Join(dir, "home.svg"), "--dry-run", "--format=false", "-o", filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "export default function Home(props: Props)")
	assert.Contains(t, stdout, `<Svg viewBox="0 0 24 24"`)

	_, err = os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(err), "dry run must not create the output directory")
}

func TestConvertCmd_FailedDocument(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.svg"), homeIcon)
	writeFile(t, filepath.Join(dir, "bad.svg"), `<svg><g></svg>`)

	_, stderr, err := executeConvert(t, dir, "-o", filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Equal(t, svgrn.ExitConversionFailed, svgrn.ExitCodeForError(err))
	assert.Contains(t, stderr, "[ERROR] bad.svg:")

	_, err = os.Stat(filepath.Join(dir, "out", "Good.tsx"))
	assert.NoError(t, err, "siblings are still written")
}

func TestConvertCmd_MissingSource(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeConvert(t, filepath.Join(t.TempDir(), "nope.svg"))
	require.Error(t, err)
	assert.Equal(t, svgrn.ExitSourceNotFound, svgrn.ExitCodeForError(err))
}

func TestConvertCmd_JSONLogs(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "home.svg"), homeIcon)

	root := &cobra.Command{Use: "svgrn", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().BoolP("verbose", "v", false, "")
	root.PersistentFlags().String("log-format", logFormatText, "")
	root.AddCommand(newConvertCmd(&convertFlagValues{}))
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"convert", filepath.Join(dir, "home.svg"), "-o", dir, "--log-format", "json"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry["msg"], "File written to")
}

func TestConvertCmd_LogFormats(t *testing.T) {
	isolateEnv(t)

	t.Run("none is silent", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "home.svg"), homeIcon)

		root := &cobra.Command{Use: "svgrn", SilenceUsage: true, SilenceErrors: true}
		root.PersistentFlags().BoolP("verbose", "v", false, "")
		root.PersistentFlags().String("log-format", logFormatText, "")
		root.AddCommand(newConvertCmd(&convertFlagValues{}))
		var stderr bytes.Buffer
		root.SetErr(&stderr)
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"convert", filepath.Join(dir, "home.svg"), "-o", dir, "--log-format", "none"})

		require.NoError(t, root.Execute())
		assert.Empty(t, stderr.String())
		assert.FileExists(t, filepath.Join(dir, "Home.tsx"))
	})

	t.Run("unknown format is a usage error", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "home.svg"), homeIcon)

		root := &cobra.Command{Use: "svgrn", SilenceUsage: true, SilenceErrors: true}
		root.PersistentFlags().BoolP("verbose", "v", false, "")
		root.PersistentFlags().String("log-format", logFormatText, "")
		root.AddCommand(newConvertCmd(&convertFlagValues{}))
		root.SetErr(&bytes.Buffer{})
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"convert", filepath.Join(dir, "home.svg"), "-o", dir, "--log-format", "xml"})

		err := root.Execute()
		require.Error(t, err)
		assert.Equal(t, svgrn.ExitUsageError, svgrn.ExitCodeForError(err))
	})
}

func TestConvertCmd_ArgsValidation(t *testing.T) {
	err := convertCmd.Args(convertCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, svgrn.ExitUsageError, svgrn.ExitCodeForError(err))
}
