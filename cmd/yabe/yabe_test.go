package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/signadot/yabe/ir"
	"github.com/signadot/yabe/parse"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testMain(t *testing.T, files map[string]string) *MainConfig {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return &MainConfig{Fs: fs, Log: zaptest.NewLogger(t)}
}

func testBase(t *testing.T, files map[string]string) *BaseConfig {
	return &BaseConfig{
		MainConfig: testMain(t, files),
		Quorum:     50,
		BaseOut:    "base.yaml",
		Name:       defaultDiffName,
	}
}

func requireDoc(t *testing.T, fs afero.Fs, path, want string) {
	t.Helper()
	d, err := afero.ReadFile(fs, path)
	require.NoError(t, err, path)
	got, err := parse.Parse(d)
	require.NoError(t, err, path)
	wantNode, err := parse.Parse([]byte(want))
	require.NoError(t, err)
	require.Truef(t, ir.Equal(wantNode, got), "%s: got\n%s\nwant\n%s", path, d, want)
}

func requireEmpty(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	d, err := afero.ReadFile(fs, path)
	require.NoError(t, err, path)
	require.Empty(t, strings.TrimSpace(string(d)), path)
}

func requireMissing(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.False(t, ok, "%s exists", path)
}

var threeInputs = map[string]string{
	"a.yaml": "x: 1\ny: 2\nz: 3\n",
	"b.yaml": "x: 1\ny: 2\nz: 4\n",
	"c.yaml": "x: 1\ny: 5\n",
}

func TestBase(t *testing.T) {
	cfg := testBase(t, threeInputs)
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml", "c.yaml"}))

	requireDoc(t, cfg.Fs, "base.yaml", "x: 1\ny: 2\n")
	requireDoc(t, cfg.Fs, "a_diff.yaml", "z: 3\n")
	requireDoc(t, cfg.Fs, "b_diff.yaml", "z: 4\n")
	requireDoc(t, cfg.Fs, "c_diff.yaml", "y: 5\n")
	// inputs are untouched
	requireDoc(t, cfg.Fs, "a.yaml", threeInputs["a.yaml"])
}

func TestBaseUnanimous(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"a.yaml": "x: 1\nl: [1, 2]\n",
		"b.yaml": "x: 1\nl: [1, 2]\n",
	})
	cfg.Quorum = 100
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml"}))
	requireDoc(t, cfg.Fs, "base.yaml", "x: 1\nl: [1, 2]\n")
	requireMissing(t, cfg.Fs, "a_diff.yaml")
	requireMissing(t, cfg.Fs, "b_diff.yaml")
}

func TestBaseNoBase(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"a.yaml": "x: 1\n",
		"b.yaml": "- 1\n",
	})
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml"}))
	requireMissing(t, cfg.Fs, "base.yaml")
	requireDoc(t, cfg.Fs, "a_diff.yaml", "x: 1\n")
	requireDoc(t, cfg.Fs, "b_diff.yaml", "- 1\n")
}

func TestBaseInPlace(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"dir/a.yaml": "x: 1\ny: 2\n",
		"dir/b.yaml": "x: 1\ny: 3\n",
		"dir/c.yaml": "x: 1\ny: 2\n",
	})
	cfg.InPlace = true
	cfg.BaseOut = "out/base.yaml"
	require.NoError(t, runBase(cfg, nil, []string{"dir/a.yaml", "dir/b.yaml", "dir/c.yaml"}))

	requireDoc(t, cfg.Fs, "out/base.yaml", "x: 1\ny: 2\n")
	requireEmpty(t, cfg.Fs, "dir/a.yaml")
	requireDoc(t, cfg.Fs, "dir/b.yaml", "y: 3\n")
	requireEmpty(t, cfg.Fs, "dir/c.yaml")
	requireMissing(t, cfg.Fs, "dir/a_diff.yaml")
}

func TestBaseRef(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"ref.yaml": "image: app\nport: 80\n",
		"a.yaml":   "image: app\nport: 8080\nenv: prod\n",
		"b.yaml":   "image: app\nport: 8080\nenv: dev\n",
	})
	cfg.Ref = "ref.yaml"
	cfg.Quorum = 100
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml"}))

	requireDoc(t, cfg.Fs, "base.yaml", "port: 8080\n")
	requireDoc(t, cfg.Fs, "a_diff.yaml", "env: prod\n")
	requireDoc(t, cfg.Fs, "b_diff.yaml", "env: dev\n")
}

func TestBaseSkipsEmpty(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"a.yaml": "x: 1\ny: 1\n",
		"b.yaml": "\n",
		"c.yaml": "x: 1\ny: 2\n",
	})
	cfg.Quorum = 100
	cfg.Name = `"out/" + string(index) + suffix`
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml", "c.yaml"}))

	requireDoc(t, cfg.Fs, "base.yaml", "x: 1\n")
	requireDoc(t, cfg.Fs, "out/0.yaml", "y: 1\n")
	requireMissing(t, cfg.Fs, "out/1.yaml")
	requireDoc(t, cfg.Fs, "out/2.yaml", "y: 2\n")
}

func TestBaseStdin(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"a.yaml": "x: 1\ny: 1\n",
	})
	cfg.Quorum = 100
	stdin := strings.NewReader("x: 1\ny: 2\n")
	require.NoError(t, runBase(cfg, stdin, []string{"a.yaml", "-"}))
	requireDoc(t, cfg.Fs, "base.yaml", "x: 1\n")
	requireDoc(t, cfg.Fs, "a_diff.yaml", "y: 1\n")
	requireDoc(t, cfg.Fs, "stdin_diff.yaml", "y: 2\n")
}

func TestBaseSorted(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"sort.yaml": "preOrder: [name]\n",
		"a.yaml":    "z: 1\nv: 1\nname: a\n",
		"b.yaml":    "z: 1\nv: 2\nname: b\n",
	})
	cfg.SortFile = "sort.yaml"
	cfg.Quorum = 100
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml"}))

	d, err := afero.ReadFile(cfg.Fs, "a_diff.yaml")
	require.NoError(t, err)
	require.Equal(t, "name: a\nv: 1\n", string(d))
}

func TestBaseBadName(t *testing.T) {
	cfg := testBase(t, threeInputs)
	cfg.Name = "stem +"
	require.Error(t, runBase(cfg, nil, []string{"a.yaml"}))
}

func TestBaseCheckRoundTrip(t *testing.T) {
	files := map[string]string{
		"ref.yaml": "kind: Deployment\nspec:\n  replicas: 1\n",
		"a.yaml":   "kind: Deployment\nspec:\n  replicas: 3\n  image: web:1\n",
		"b.yaml":   "kind: Deployment\nspec:\n  replicas: 3\n  image: web:2\n",
		"c.yaml":   "kind: Deployment\nspec:\n  replicas: 2\n  image: web:1\n",
	}
	cfg := testBase(t, files)
	cfg.Ref = "ref.yaml"
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml", "c.yaml"}))

	check := &CheckConfig{MainConfig: cfg.MainConfig, BaseFile: "base.yaml", Ref: "ref.yaml"}
	out := bytes.NewBuffer(nil)
	ok, err := runCheck(check, out, []string{"a.yaml:a_diff.yaml", "b.yaml:b_diff.yaml", "c.yaml:c_diff.yaml"})
	require.NoError(t, err)
	require.True(t, ok, out.String())
	require.Empty(t, out.String())
}

func TestCheckMismatch(t *testing.T) {
	cfg := testMain(t, map[string]string{
		"base.yaml":   "x: 1\ny: 2\n",
		"a.yaml":      "x: 1\ny: 3\n",
		"a_diff.yaml": "y: 4\n",
	})
	check := &CheckConfig{MainConfig: cfg, BaseFile: "base.yaml"}
	out := bytes.NewBuffer(nil)
	ok, err := runCheck(check, out, []string{"a.yaml:a_diff.yaml"})
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, out.String(), "--- a.yaml\n")
	require.Contains(t, out.String(), "-y: 3\n")
	require.Contains(t, out.String(), "+y: 4\n")
	require.Contains(t, out.String(), " x: 1\n")
}

func TestCheckMissingDiff(t *testing.T) {
	cfg := testMain(t, map[string]string{
		"base.yaml": "x: 1\n",
		"a.yaml":    "x: 1\n",
	})
	check := &CheckConfig{MainConfig: cfg, BaseFile: "base.yaml"}
	out := bytes.NewBuffer(nil)
	ok, err := runCheck(check, out, []string{"a.yaml:a_diff.yaml"})
	require.NoError(t, err)
	require.True(t, ok, out.String())
}

func TestCheckBadPair(t *testing.T) {
	cfg := testMain(t, nil)
	check := &CheckConfig{MainConfig: cfg, BaseFile: "base.yaml"}
	_, err := runCheck(check, bytes.NewBuffer(nil), []string{"a.yaml"})
	require.Error(t, err)
}

func TestDiff(t *testing.T) {
	cfg := testMain(t, map[string]string{
		"a.yaml": "x: 1\ny: 2\n",
		"b.yaml": "x: 1\ny: 3\n",
	})
	out := bytes.NewBuffer(nil)
	differs, err := runDiff(cfg, out, nil, "a.yaml", "b.yaml")
	require.NoError(t, err)
	require.True(t, differs)
	require.Equal(t, "y: 2\n", out.String())

	out.Reset()
	differs, err = runDiff(cfg, out, nil, "a.yaml", "a.yaml")
	require.NoError(t, err)
	require.False(t, differs)
	require.Empty(t, out.String())
}

func TestDiffJSON(t *testing.T) {
	cfg := testMain(t, map[string]string{
		"a.yaml": "x: 1\ny: 2\n",
		"b.yaml": "x: 1\n",
	})
	cfg.J = true
	out := bytes.NewBuffer(nil)
	differs, err := runDiff(cfg, out, nil, "a.yaml", "b.yaml")
	require.NoError(t, err)
	require.True(t, differs)
	require.JSONEq(t, `{"y": 2}`, out.String())
}

func TestMerge(t *testing.T) {
	cfg := &MergeConfig{MainConfig: testMain(t, map[string]string{
		"base.yaml": "x: 1\ny: {a: 1}\n",
		"d1.yaml":   "y: {b: 2}\n",
		"d2.yaml":   "z: 3\ny: {a: 0}\n",
		"empty":     "",
	})}
	out := bytes.NewBuffer(nil)
	require.NoError(t, runMerge(cfg, out, nil, []string{"base.yaml", "d1.yaml", "empty", "d2.yaml"}))
	require.Equal(t, "x: 1\ny:\n  a: 0\n  b: 2\nz: 3\n", out.String())
}

func TestSort(t *testing.T) {
	cfg := &SortConfig{
		MainConfig: testMain(t, map[string]string{
			"sort.yaml": "sortKey: name\npreOrder: [name]\n",
			"a.yaml":    "items:\n  - name: b\n  - name: a\nname: x\n",
		}),
		Config: "sort.yaml",
	}
	out := bytes.NewBuffer(nil)
	stdin := strings.NewReader("v: 1\nname: y\n")
	require.NoError(t, runSort(cfg, out, stdin, []string{"a.yaml", "-"}))
	want := strings.Join([]string{
		"name: x",
		"items:",
		"  - name: a",
		"  - name: b",
		"---",
		"name: y",
		"v: 1",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestBaseTypedKeys(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"a.yaml": "ports:\n  8080: web\n  9090: metrics\n",
		"b.yaml": "ports:\n  8080: web\n  9090: admin\n",
	})
	cfg.Quorum = 100
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml"}))
	requireDoc(t, cfg.Fs, "base.yaml", "ports:\n  8080: web\n")
	requireDoc(t, cfg.Fs, "a_diff.yaml", "ports:\n  9090: metrics\n")
	requireDoc(t, cfg.Fs, "b_diff.yaml", "ports:\n  9090: admin\n")

	out := bytes.NewBuffer(nil)
	differs, err := runDiff(cfg.MainConfig, out, nil, "a.yaml", "b.yaml")
	require.NoError(t, err)
	require.True(t, differs)
	require.Equal(t, "ports:\n  9090: metrics\n", out.String())
}

func TestStdinOnce(t *testing.T) {
	cfg := testBase(t, map[string]string{"a.yaml": "x: 1\n"})
	cfg.Ref = "-"
	err := runBase(cfg, strings.NewReader("x: 1\n"), []string{"a.yaml", "-"})
	require.ErrorIs(t, err, cli.ErrUsage)
	requireMissing(t, cfg.Fs, "base.yaml")

	_, err = runDiff(cfg.MainConfig, bytes.NewBuffer(nil), strings.NewReader(""), "-", "-")
	require.ErrorIs(t, err, cli.ErrUsage)

	_, err = loadInputs(cfg.Fs, strings.NewReader(""), []string{"-", "a.yaml", "-"})
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestLoadInputsStdinError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.yaml", []byte("x: 1\n"), 0644))
	boom := errors.New("boom")
	_, err := loadInputs(fs, iotest.ErrReader(boom), []string{"a.yaml", "-"})
	require.ErrorIs(t, err, boom)
}

func TestCheckRejectsStdin(t *testing.T) {
	cfg := testMain(t, map[string]string{"base.yaml": "x: 1\n"})
	check := &CheckConfig{MainConfig: cfg, BaseFile: "base.yaml"}
	_, err := runCheck(check, bytes.NewBuffer(nil), []string{"-:a_diff.yaml"})
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestBaseFormatFromPath(t *testing.T) {
	cfg := testBase(t, map[string]string{
		"a.json": `{"x": 1, "y": 1}`,
		"b.json": `{"x": 1, "y": 2}`,
	})
	cfg.Quorum = 100
	cfg.BaseOut = "base.json"
	cfg.InPlace = true
	require.NoError(t, runBase(cfg, nil, []string{"a.json", "b.json"}))

	for path, want := range map[string]string{
		"base.json": `{"x": 1}`,
		"a.json":    `{"y": 1}`,
		"b.json":    `{"y": 2}`,
	} {
		d, err := afero.ReadFile(cfg.Fs, path)
		require.NoError(t, err)
		require.JSONEq(t, want, string(d), path)
	}
}

func TestBaseExplicitFormat(t *testing.T) {
	cfg := testBase(t, threeInputs)
	cfg.J = true
	cfg.BaseOut = "base.yaml"
	require.NoError(t, runBase(cfg, nil, []string{"a.yaml", "b.yaml", "c.yaml"}))

	d, err := afero.ReadFile(cfg.Fs, "base.yaml")
	require.NoError(t, err)
	require.JSONEq(t, `{"x": 1, "y": 2}`, string(d))
	d, err = afero.ReadFile(cfg.Fs, "c_diff.json")
	require.NoError(t, err)
	require.JSONEq(t, `{"y": 5}`, string(d))
}
