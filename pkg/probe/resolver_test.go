// pkg/probe/resolver_test.go
package probe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgprobe/pkgprobe/pkg/envpolicy"
)

func envMap(env map[string]string) envpolicy.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// writeStub drops an executable shell script standing in for the
// discovery tool.
func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tool scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "pkg-config-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestFindDynamicDefault(t *testing.T) {
	stub := writeStub(t, `echo '-I/usr/local/include -L/usr/local/lib -lfoo'`)

	var out bytes.Buffer
	lib, err := NewConfig().
		WithEnv(envMap(nil)).
		WithTool(stub).
		WithOutput(&out).
		Find("foo")
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, lib.Libs)
	assert.Equal(t, []string{"/usr/local/lib"}, lib.LinkPaths)
	assert.Equal(t, []string{"/usr/local/include"}, lib.IncludePaths)
	assert.Empty(t, lib.Frameworks)
	assert.Empty(t, lib.FrameworkPaths)

	want := "pkgprobe:link-search=native=/usr/local/lib\n" +
		"pkgprobe:link-lib=foo\n"
	assert.Equal(t, want, out.String())
}

func TestFindStaticWithArchiveOutsideSysroot(t *testing.T) {
	libdir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(libdir, "libfoo.a"), []byte("!<arch>\n"), 0o644))

	stub := writeStub(t, fmt.Sprintf(`echo '-L%s -lfoo'`, libdir))

	var out bytes.Buffer
	lib, err := NewConfig().
		WithEnv(envMap(map[string]string{"FOO_STATIC": "1"})).
		WithTool(stub).
		WithOutput(&out).
		Find("foo")
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, lib.Libs)
	assert.Contains(t, out.String(), "pkgprobe:link-lib=static=foo\n")
	assert.NotContains(t, out.String(), "pkgprobe:link-lib=foo\n")
}

func TestFindStaticSysrootExempt(t *testing.T) {
	// Even in static mode, a directory under the trusted root never
	// justifies static linking.
	stub := writeStub(t, `echo '-L/usr/lib -lfoo'`)

	var out bytes.Buffer
	_, err := NewConfig().
		WithEnv(envMap(map[string]string{"FOO_STATIC": "1"})).
		WithTool(stub).
		WithOutput(&out).
		Find("foo")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "pkgprobe:link-lib=foo\n")
	assert.NotContains(t, out.String(), "static=foo")
}

func TestFindExplicitStaticBeatsEnvironment(t *testing.T) {
	libdir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(libdir, "libfoo.a"), []byte("!<arch>\n"), 0o644))

	stub := writeStub(t, fmt.Sprintf(`echo '-L%s -lfoo'`, libdir))

	var out bytes.Buffer
	_, err := NewConfig().
		WithEnv(envMap(map[string]string{"FOO_DYNAMIC": "1"})).
		WithTool(stub).
		WithOutput(&out).
		Static(true).
		Find("foo")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "pkgprobe:link-lib=static=foo\n")
}

func TestFindFrameworks(t *testing.T) {
	stub := writeStub(t, `echo '-F/Library/Frameworks -framework Cocoa -lfoo'`)

	var out bytes.Buffer
	lib, err := NewConfig().
		WithEnv(envMap(nil)).
		WithTool(stub).
		WithOutput(&out).
		Find("foo")
	require.NoError(t, err)

	assert.Equal(t, []string{"/Library/Frameworks"}, lib.FrameworkPaths)
	assert.Equal(t, []string{"Cocoa"}, lib.Frameworks)
	assert.Contains(t, out.String(), "pkgprobe:link-search=framework=/Library/Frameworks\n")
	assert.Contains(t, out.String(), "pkgprobe:link-lib=framework=Cocoa\n")
}

func TestFindDisabledByEnvironment(t *testing.T) {
	_, err := NewConfig().
		WithEnv(envMap(map[string]string{"FOO_NO_PKG_CONFIG": "1"})).
		Find("foo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDisabled))
	assert.Contains(t, err.Error(), "foo")
}

func TestFindCrossCompileBlockedBeforeSpawn(t *testing.T) {
	// The tool path is unresolvable; reaching the spawn would produce an
	// invocation error instead.
	_, err := NewConfig().
		WithEnv(envMap(map[string]string{"HOST": "x86_64-linux", "TARGET": "aarch64-linux"})).
		WithTool("/nonexistent/pkg-config").
		Find("foo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCrossCompilation))
	assert.Contains(t, errors.FlattenHints(err), "PKG_CONFIG_ALLOW_CROSS")
}

func TestFindCrossCompileOverride(t *testing.T) {
	stub := writeStub(t, `echo '-lfoo'`)

	var out bytes.Buffer
	lib, err := NewConfig().
		WithEnv(envMap(map[string]string{
			"HOST":                   "x86_64-linux",
			"TARGET":                 "aarch64-linux",
			"PKG_CONFIG_ALLOW_CROSS": "1",
		})).
		WithTool(stub).
		WithOutput(&out).
		Find("foo")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, lib.Libs)
}

func TestFindSpawnFailure(t *testing.T) {
	_, err := NewConfig().
		WithEnv(envMap(nil)).
		WithTool(filepath.Join(t.TempDir(), "missing-tool")).
		WithOutput(&bytes.Buffer{}).
		Find("foo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolInvocation))
	assert.Contains(t, err.Error(), "failed to run")
}

func TestFindToolFailure(t *testing.T) {
	stub := writeStub(t, `echo "No package 'foo' found" >&2
exit 1`)

	_, err := NewConfig().
		WithEnv(envMap(nil)).
		WithTool(stub).
		WithOutput(&bytes.Buffer{}).
		Find("foo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolFailure))
	assert.Contains(t, err.Error(), "did not exit successfully")
	assert.Contains(t, err.Error(), "--- stderr")
	assert.Contains(t, err.Error(), "No package 'foo' found")
}

func TestFindVersionQueryArguments(t *testing.T) {
	argFile := filepath.Join(t.TempDir(), "args")
	stub := writeStub(t, fmt.Sprintf(`printf '%%s' "$*" > %s
echo '-lfoo'`, argFile))

	_, err := NewConfig().
		WithEnv(envMap(nil)).
		WithTool(stub).
		WithOutput(&bytes.Buffer{}).
		AtLeastVersion("1.2").
		Find("foo")
	require.NoError(t, err)

	args, rerr := os.ReadFile(argFile)
	require.NoError(t, rerr)
	assert.Equal(t, "--libs --cflags foo >= 1.2", string(args))
}

func TestFindStaticFlagPassed(t *testing.T) {
	argFile := filepath.Join(t.TempDir(), "args")
	stub := writeStub(t, fmt.Sprintf(`printf '%%s' "$*" > %s
echo '-lfoo'`, argFile))

	var out bytes.Buffer
	_, err := NewConfig().
		WithEnv(envMap(nil)).
		WithTool(stub).
		WithOutput(&out).
		Static(true).
		Find("foo")
	require.NoError(t, err)

	args, rerr := os.ReadFile(argFile)
	require.NoError(t, rerr)
	assert.Equal(t, "--static --libs --cflags foo", string(args))

	// No archive was found outside the sysroot, so the directive stays
	// dynamic even though --static was passed.
	assert.Contains(t, out.String(), "pkgprobe:link-lib=foo\n")
}

func TestFindToolFromEnvironment(t *testing.T) {
	stub := writeStub(t, `echo '-lfoo'`)

	var out bytes.Buffer
	lib, err := NewConfig().
		WithEnv(envMap(map[string]string{"PKG_CONFIG": stub})).
		WithOutput(&out).
		Find("foo")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, lib.Libs)
}

func TestFindToolOverrideWithLeadingArgs(t *testing.T) {
	argFile := filepath.Join(t.TempDir(), "args")
	stub := writeStub(t, fmt.Sprintf(`printf '%%s' "$*" > %s
echo '-lfoo'`, argFile))

	_, err := NewConfig().
		WithEnv(envMap(nil)).
		WithTool(stub + " --personality=debian").
		WithOutput(&bytes.Buffer{}).
		Find("foo")
	require.NoError(t, err)

	args, rerr := os.ReadFile(argFile)
	require.NoError(t, rerr)
	assert.Equal(t, "--personality=debian --libs --cflags foo", string(args))
}

func TestFindDuplicateLibsPreserved(t *testing.T) {
	stub := writeStub(t, `echo '-lfoo -lbar -lfoo'`)

	lib, err := NewConfig().
		WithEnv(envMap(nil)).
		WithTool(stub).
		WithOutput(&bytes.Buffer{}).
		Find("foo")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "foo"}, lib.Libs)
}
