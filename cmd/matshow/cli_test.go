// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gogpu/matshow"
	"github.com/gogpu/matshow/internal/config"
)

type recordDisplay struct {
	title  string
	frames []image.Image
}

func (d *recordDisplay) Show(title string, frames <-chan image.Image) error {
	d.title = title
	for f := range frames {
		d.frames = append(d.frames, f)
	}
	return nil
}

// run executes the root command with an isolated config file.
func run(t *testing.T, d matshow.Display, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { matshow.SetLogger(nil) })

	cmd := newTestRootCmd(d)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--config", emptyConfig(t), "--log-level", "error"}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matshow.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

// newTestRootCmd builds the root command; a non-nil d replaces the window.
func newTestRootCmd(d matshow.Display) *cobra.Command {
	c := newCLI()
	if d != nil {
		c.newDisplay = func() matshow.Display { return d }
	}
	return c.command()
}

func writeMatrix(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShowWindow(t *testing.T) {
	path := writeMatrix(t, "0 1\n1 0\n")
	d := &recordDisplay{}

	_, err := run(t, d, "--cell-size", "1", "--title", "demo", path)
	require.NoError(t, err)

	assert.Equal(t, "demo", d.title)
	require.Len(t, d.frames, 1)
	assert.Equal(t, image.Rect(0, 0, 2, 2), d.frames[0].Bounds())
}

func TestShowOutput(t *testing.T) {
	path := writeMatrix(t, "0 0.5\n1 2\n")
	out := filepath.Join(t.TempDir(), "out.png")
	d := &recordDisplay{}

	_, err := run(t, d, "-o", out, "--cell-size", "3", path)
	require.NoError(t, err)
	assert.Empty(t, d.frames, "window must not open when output is set")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())
}

func TestShowErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"ragged", "1 2\n3\n", matshow.ErrShapeMismatch},
		{"parse", "1 x\n", matshow.ErrParse},
		{"empty", "", matshow.ErrShapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &recordDisplay{}
			_, err := run(t, d, writeMatrix(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, d.frames)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := run(t, &recordDisplay{}, filepath.Join(t.TempDir(), "nope.txt"))
		require.ErrorIs(t, err, matshow.ErrFileNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := run(t, &recordDisplay{}, t.TempDir())
		require.ErrorIs(t, err, matshow.ErrFileNotFound)
	})

	t.Run("huge cell size", func(t *testing.T) {
		_, err := run(t, &recordDisplay{}, "--cell-size", "1000000", writeMatrix(t, "0 1\n"))
		require.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("missing config", func(t *testing.T) {
		cmd := newTestRootCmd(&recordDisplay{})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "typo.yaml"), writeMatrix(t, "1\n")})
		require.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
	})

	t.Run("bad flag value", func(t *testing.T) {
		_, err := run(t, &recordDisplay{}, "--colormap", "viridis", writeMatrix(t, "1\n"))
		require.ErrorIs(t, err, config.ErrInvalid)
		require.ErrorIs(t, err, matshow.ErrUnknownColormap)
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	matrix := writeMatrix(t, "1 0\n0 1\n")
	cfgPath := filepath.Join(dir, "matshow.yaml")
	cfg := config.Default()
	cfg.Path = matrix
	cfg.Title = "from config"
	cfg.CellSize = 2
	require.NoError(t, cfg.Save(cfgPath))

	d := &recordDisplay{}
	cmd := newTestRootCmd(d)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "--log-level", "error", "--title", "from flag"})
	t.Cleanup(func() { matshow.SetLogger(nil) })
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "from flag", d.title)
	require.Len(t, d.frames, 1)
	assert.Equal(t, image.Rect(0, 0, 4, 4), d.frames[0].Bounds())
}

func TestSymmetryCmd(t *testing.T) {
	t.Run("asymmetric", func(t *testing.T) {
		out, err := run(t, nil, "symmetry", writeMatrix(t, "1 2\n3 4\n"))
		require.NoError(t, err)
		assert.Equal(t, "0, 1\n1, 0\n", out)
	})

	t.Run("symmetric", func(t *testing.T) {
		out, err := run(t, nil, "symmetry", "--strict", writeMatrix(t, "1 2\n2 4\n"))
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("strict", func(t *testing.T) {
		_, err := run(t, nil, "symmetry", "--strict", writeMatrix(t, "1 2\n3 4\n"))
		require.ErrorIs(t, err, errAsymmetric)
	})

	t.Run("limit", func(t *testing.T) {
		out, err := run(t, nil, "symmetry", "--limit", "1", writeMatrix(t, "0 1 2\n0 0 3\n0 0 0\n"))
		require.NoError(t, err)
		assert.Equal(t, "0, 1\n... 5 more\n", out)
	})

	t.Run("not square", func(t *testing.T) {
		_, err := run(t, nil, "symmetry", writeMatrix(t, "1 2\n"))
		require.ErrorIs(t, err, matshow.ErrNotSquare)
	})
}

func TestInfoCmd(t *testing.T) {
	out, err := run(t, nil, "info", writeMatrix(t, "0 2\n2 1\n"))
	require.NoError(t, err)

	assert.Contains(t, out, "shape       2 x 2 (4 cells)")
	assert.Contains(t, out, "max         2")
	assert.Contains(t, out, "outside     2 (range [0, 1])")
	assert.Contains(t, out, "symmetric   true")
}

func TestGenCmd(t *testing.T) {
	for _, kind := range []string{"band", "identity", "random"} {
		t.Run(kind, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "gen.txt")
			_, err := run(t, nil, "gen", "--kind", kind, "-n", "5", path)
			require.NoError(t, err)

			m, err := matshow.Load(path)
			require.NoError(t, err)
			rows, cols, err := m.Shape()
			require.NoError(t, err)
			assert.Equal(t, 5, rows)
			assert.Equal(t, 5, cols)
			ok, err := matshow.IsSymmetric(m)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}

	t.Run("keeps existing file", func(t *testing.T) {
		path := writeMatrix(t, "7\n")
		_, err := run(t, nil, "gen", "-n", "3", path)
		require.ErrorIs(t, err, fs.ErrExist)

		m, err := matshow.Load(path)
		require.NoError(t, err)
		assert.True(t, m.Equal(matshow.Matrix{{7}}))

		_, err = run(t, nil, "gen", "-n", "3", "--force", path)
		require.NoError(t, err)
		m, err = matshow.Load(path)
		require.NoError(t, err)
		assert.Len(t, m, 3)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := run(t, nil, "gen", "--kind", "spiral", filepath.Join(t.TempDir(), "x.txt"))
		require.Error(t, err)
	})
}

// syncCounter is a log sink that counts flushes.
type syncCounter struct {
	bytes.Buffer
	syncs int
}

func (s *syncCounter) Sync() error {
	s.syncs++
	return nil
}

func TestExecuteSyncsLoggerOnError(t *testing.T) {
	t.Cleanup(func() { matshow.SetLogger(nil) })

	sink := &syncCounter{}
	c := newCLI()
	c.buildLogger = func(level zapcore.Level) (*zap.Logger, error) {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		return zap.New(zapcore.NewCore(enc, sink, level)), nil
	}
	cmd := c.command()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", emptyConfig(t), filepath.Join(t.TempDir(), "nope.txt")})

	err := c.execute(context.Background(), cmd)
	require.ErrorIs(t, err, matshow.ErrFileNotFound)
	assert.Equal(t, 1, sink.syncs)
}
