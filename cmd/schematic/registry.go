package main

import (
	"fmt"

	"github.com/praetorian-inc/schematic/pkg/registry"
)

// registryPath overrides the built-in day table for run and days.
var registryPath string

func loadRegistry() (*registry.Registry, error) {
	if registryPath == "" {
		r, err := registry.Builtin()
		if err != nil {
			return nil, fmt.Errorf("loading builtin days: %w", err)
		}
		return r, nil
	}
	r, err := registry.LoadFile(registryPath)
	if err != nil {
		return nil, fmt.Errorf("loading days from %s: %w", registryPath, err)
	}
	return r, nil
}
