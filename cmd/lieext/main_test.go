package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lieext/cocycle"
	"github.com/katalvlaran/lieext/rational"
)

const filiformYAML = `mode: graded
weights: [1, 1, 2, 3]
brackets:
  - {i: 0, j: 1, k: 2, c: "1"}
  - {i: 0, j: 2, k: 3, c: "1"}
`

const filiformTOML = `mode = "graded"
weights = [1, 1, 2, 3]

[[brackets]]
i = 0
j = 1
k = 2
c = "1"

[[brackets]]
i = 0
j = 2
k = 3
c = "1"
`

const heisenbergYAML = `mode: graded
weights: [1, 1, 2]
brackets:
  - {i: 0, j: 1, k: 2, c: "1"}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func textConfig() Config { return Config{Format: "text"} }

func TestLoadAlgebra_YAMLAndTOML(t *testing.T) {
	for name, content := range map[string]string{"a.yaml": filiformYAML, "a.toml": filiformTOML} {
		t.Run(name, func(t *testing.T) {
			alg, err := loadAlgebra(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, "graded", alg.mode)
			assert.Equal(t, []int{1, 1, 2, 3}, alg.weights)
			require.Len(t, alg.table, 4)
			c, ok := alg.table.Coeff(0, 2, 3)
			require.True(t, ok)
			assert.True(t, c.Equal(rational.One()))
		})
	}
}

func TestLoadAlgebra_Errors(t *testing.T) {
	_, err := loadAlgebra(writeFile(t, "a.json", "{}"))
	assert.ErrorIs(t, err, errUnknownFormat)

	_, err = parseAlgebra([]byte("brackets:\n  - {i: 1, j: 0, k: 2, c: \"1\"}\n"), "yaml")
	assert.ErrorIs(t, err, errBadBracket)

	_, err = parseAlgebra([]byte("generators: 2\nbrackets:\n  - {i: 0, j: 1, k: 2, c: \"1\"}\n"), "yaml")
	assert.ErrorIs(t, err, errBadBracket, "k beyond declared generators")

	_, err = parseAlgebra([]byte("weights: [1, 1]\nbrackets:\n  - {i: 0, j: 1, k: 2, c: \"1\"}\n"), "yaml")
	assert.ErrorIs(t, err, errBadWeights)

	_, err = parseAlgebra([]byte("brackets:\n  - {i: 0, j: 1, k: 2, c: \"1/0\"}\n"), "yaml")
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

func TestRunBasis_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runBasis(&buf, writeFile(t, "f.yaml", filiformYAML), textConfig()))

	want := `mode: graded
generators: 4
dimension: 4
[0] E0,1  (degree 2)
[1] E0,2  (degree 3)
[2] E1,2  (degree 3)
[3] E0,3  (degree 4)
forbidden: (1,3) (2,3)
`
	assert.Equal(t, want, buf.String())
}

func TestRunBasis_ModeOverride(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Mode: "nilpotent", Format: "text"}
	require.NoError(t, runBasis(&buf, writeFile(t, "f.toml", filiformTOML), cfg))
	assert.Contains(t, buf.String(), "mode: nilpotent\n")
	assert.Contains(t, buf.String(), "dimension: 4\n")
	assert.NotContains(t, buf.String(), "degree")
}

func TestRunBasis_YAML(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Format: "yaml"}
	require.NoError(t, runBasis(&buf, writeFile(t, "f.yaml", filiformYAML), cfg))

	var doc basisDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "graded", doc.Mode)
	assert.Equal(t, 4, doc.Dimension)
	require.Len(t, doc.Cocycles, 4)
	require.NotNil(t, doc.Cocycles[3].Degree)
	assert.Equal(t, 4, *doc.Cocycles[3].Degree)
	assert.Equal(t, []termDoc{{I: 0, J: 3, C: "1"}}, doc.Cocycles[3].Terms)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}}, doc.Forbidden)
}

func TestRunBasis_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runBasis(&buf, writeFile(t, "f.yaml", filiformYAML), Config{Format: "toml"}))
	assert.Contains(t, buf.String(), "dimension = 4")
}

func TestRunBasis_MissingWeights(t *testing.T) {
	path := writeFile(t, "f.yaml", "brackets:\n  - {i: 0, j: 1, k: 2, c: \"1\"}\n")
	err := runBasis(&bytes.Buffer{}, path, textConfig())
	assert.ErrorIs(t, err, cocycle.ErrMissingWeights, "graded is the default mode")

	require.NoError(t, runBasis(&bytes.Buffer{}, path, Config{Mode: "nilpotent", Format: "text"}))
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, "carnot", Config{Mode: "carnot"}.resolveMode("nilpotent"))
	assert.Equal(t, "nilpotent", Config{}.resolveMode("nilpotent"))
	assert.Equal(t, defaultMode, Config{}.resolveMode(""))
}

func TestParseTerms(t *testing.T) {
	c, err := parseTerms([]string{"0,3=-1/6", " 1 , 3 =1"})
	require.NoError(t, err)
	assert.Equal(t, "-1/6·E0,3 + E1,3", c.String())

	for _, bad := range []string{"0,3", "03=1", "a,3=1", "2,2=1", "0,1=x"} {
		_, err := parseTerms([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRunCheck(t *testing.T) {
	path := writeFile(t, "f.yaml", filiformYAML)

	var buf bytes.Buffer
	require.NoError(t, runCheck(&buf, path, []string{"0,3=7"}))
	assert.Equal(t, "7·E0,3 is a 2-cocycle\n", buf.String())

	err := runCheck(&bytes.Buffer{}, path, []string{"1,3=1"})
	assert.ErrorIs(t, err, cocycle.ErrNotCocycle)
}

func TestRunExtend(t *testing.T) {
	path := writeFile(t, "h.yaml", heisenbergYAML)

	var buf bytes.Buffer
	require.NoError(t, runExtend(&buf, path, textConfig(), 1, nil, "yaml"))

	alg, err := parseAlgebra(buf.Bytes(), "yaml")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 3}, alg.weights)
	require.Len(t, alg.table, 4)
	c, ok := alg.table.Coeff(0, 2, 3)
	require.True(t, ok)
	assert.True(t, c.Equal(rational.One()))

	err = runExtend(&bytes.Buffer{}, path, textConfig(), 9, nil, "yaml")
	assert.ErrorIs(t, err, errNoSuchCocycle)

	err = runExtend(&bytes.Buffer{}, path, textConfig(), 0, []string{"0,1=1", "0,2=1"}, "yaml")
	assert.ErrorIs(t, err, cocycle.ErrInhomogeneous)
}

func TestRunExtend_NilpotentDropsWeights(t *testing.T) {
	path := writeFile(t, "h.toml", "weights = [1, 1, 2]\n[[brackets]]\ni = 0\nj = 1\nk = 2\nc = \"1\"\n")

	var buf bytes.Buffer
	cfg := Config{Mode: "nilpotent"}
	require.NoError(t, runExtend(&buf, path, cfg, 0, []string{"0,1=1", "0,2=2"}, "toml"))

	alg, err := parseAlgebra(buf.Bytes(), "toml")
	require.NoError(t, err)
	assert.Equal(t, "nilpotent", alg.mode, "the mode used is written out")
	assert.Nil(t, alg.weights)
	c, ok := alg.table.Coeff(0, 2, 3)
	require.True(t, ok)
	assert.Equal(t, "2", c.String())

	// without weights the extension must still load under the default config
	ext := writeFile(t, "ext.toml", buf.String())
	var out bytes.Buffer
	require.NoError(t, runBasis(&out, ext, textConfig()))
	assert.Contains(t, out.String(), "mode: nilpotent\n")
}

// executeExtend runs the extend command through the root command and resets
// its flags afterwards.
func executeExtend(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		_ = extendCmd.Flags().Set("index", "0")
		_ = extendCmd.Flags().Set("out", "")
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"extend"}, args...))

	return rootCmd.Execute()
}

func TestExtendCommand_OutOverwritesInput(t *testing.T) {
	path := writeFile(t, "h.yaml", heisenbergYAML)

	require.NoError(t, executeExtend(t, path, "--index", "1", "--out", path))

	alg, err := loadAlgebra(path)
	require.NoError(t, err)
	assert.Equal(t, "graded", alg.mode)
	assert.Equal(t, []int{1, 1, 2, 3}, alg.weights)
	require.Len(t, alg.table, 4)
	c, ok := alg.table.Coeff(0, 2, 3)
	require.True(t, ok)
	assert.True(t, c.Equal(rational.One()))
}

func TestExtendCommand_FailureLeavesFilesAlone(t *testing.T) {
	path := writeFile(t, "h.yaml", heisenbergYAML)
	out := filepath.Join(filepath.Dir(path), "out.yaml")

	err := executeExtend(t, path, "--index", "9", "--out", out)
	assert.ErrorIs(t, err, errNoSuchCocycle)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, heisenbergYAML, string(data))
	assert.NoFileExists(t, out)

	err = executeExtend(t, path, "--index", "9", "--out", path)
	assert.ErrorIs(t, err, errNoSuchCocycle)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, heisenbergYAML, string(data), "input survives a failed in-place extend")
}

func TestWatchFile(t *testing.T) {
	path := writeFile(t, "w.yaml", heisenbergYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() { changed <- struct{}{} })
	}()

	// give the watcher time to register before writing
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(filiformYAML), 0o600))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watchFile did not stop")
	}
}
