// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package executor

// DefaultRenderablesPerBudgetCheck is the default batch size between two
// time budget checks.
const DefaultRenderablesPerBudgetCheck = 10

// DefaultUniformCacheLimit is the default soft limit of resolved semantic
// uniforms kept by a State.
const DefaultUniformCacheLimit = 4096

// Config configures an Executor.
type Config struct {
	// RenderablesPerBudgetCheck is the number of renderables, counted across
	// passes, rendered between two time budget checks. A call always renders
	// at least this many renderables before it can be interrupted.
	// Default is 10.
	RenderablesPerBudgetCheck uint32
}

// DefaultConfig returns the default executor configuration.
func DefaultConfig() Config {
	return Config{
		RenderablesPerBudgetCheck: DefaultRenderablesPerBudgetCheck,
	}
}

// withDefaults replaces zero fields with their defaults.
func (c Config) withDefaults() Config {
	if c.RenderablesPerBudgetCheck == 0 {
		c.RenderablesPerBudgetCheck = DefaultRenderablesPerBudgetCheck
	}
	return c
}
