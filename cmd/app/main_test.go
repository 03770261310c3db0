package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/device-management-toolkit/cacheboot/config"
)

func TestMain_RunsWithLoadedConfig(t *testing.T) { //nolint:paralleltest // swaps package-level function pointers
	want := &config.Config{App: config.App{Name: "cacheboot"}}

	var got *config.Config

	origConfig, origRun := initializeConfigFunc, runAppFunc

	defer func() { initializeConfigFunc, runAppFunc = origConfig, origRun }()

	initializeConfigFunc = func() (*config.Config, error) { return want, nil }
	runAppFunc = func(cfg *config.Config) { got = cfg }

	main()

	assert.Same(t, want, got)
}
