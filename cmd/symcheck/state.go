// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dblohm7/comshim/softdevice"
)

// globalState holds everything a command touches outside its own flags, so
// tests can substitute the filesystem and the output streams.
type globalState struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger

	manifestPath string
	verbose      bool
}

func newGlobalState() *globalState {
	return &globalState{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: zap.NewNop(),
	}
}

// setupLogger replaces the no-op logger with one writing to stderr: warnings
// and up in JSON normally, everything in console format with --verbose.
func (gs *globalState) setupLogger() {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)
	if gs.verbose {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.WarnLevel
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(gs.stderr), level)
	gs.logger = zap.New(core).Named("symcheck")
}

// manifest returns the variant manifest named by --manifest, or the one
// built into the softdevice package.
func (gs *globalState) manifest() (*softdevice.Manifest, error) {
	if gs.manifestPath == "" {
		gs.logger.Debug("using built-in manifest")
		return softdevice.DefaultManifest(), nil
	}
	gs.logger.Debug("loading manifest", zap.String("path", gs.manifestPath))
	return softdevice.LoadManifest(gs.fs, gs.manifestPath)
}
