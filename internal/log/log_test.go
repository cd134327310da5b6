// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLevel(t *testing.T) {
	td := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" INFO ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"Error":  slog.LevelError,
	}
	for s, want := range td {
		l, err := slogLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, l, s)
	}
	_, err := slogLevel("verbose")
	assert.Error(t, err)
}

func TestSlogHandler(t *testing.T) {
	_, err := slogHandler("json", nil)
	assert.NoError(t, err)
	_, err = slogHandler("logfmt", nil)
	assert.NoError(t, err)
	_, err = slogHandler("xml", nil)
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	prevOutput, prevDefault := output, slog.Default()
	output = &buf
	defer func() {
		output = prevOutput
		slog.SetDefault(prevDefault)
		structuredLoggingEnabled.Store(false)
	}()

	// glog stays in charge unless --log-fmt is set
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=warn"}))
	require.NoError(t, Init(fs))
	assert.False(t, structuredLoggingEnabled.Load())

	fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt=logfmt", "--log-level=warn"}))
	require.NoError(t, Init(fs))
	assert.True(t, structuredLoggingEnabled.Load())
	assert.False(t, Enabled(slog.LevelInfo))

	InfoS("hidden")
	WarnS("step done", "n", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `msg="step done" n=3`)

	fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt=yaml"}))
	assert.Error(t, Init(fs))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer restore()

	DebugS("newton step", "n", 1, "terms", 10)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "newton step", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 10, rec["terms"])
}

func TestLogRotateMaxSize(t *testing.T) {
	prev := glog.MaxSize
	defer func() { glog.MaxSize = prev }()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-rotate-max-size=1024"}))
	assert.Equal(t, uint64(1024), glog.MaxSize)
	assert.Error(t, fs.Parse([]string{"--log-rotate-max-size=big"}))
}
