// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"sync"
)

type configContextKey uint8

const configContextKeyValue configContextKey = 0

type threadSafeConfig struct {
	sync.RWMutex
	Config
}

// NewContext returns a new context with an empty Config.
func NewContext() context.Context {
	return WithConfig(Config{})
}

// NewContextWithDefaultConfig returns a new context with a default Config.
func NewContextWithDefaultConfig() context.Context {
	return WithConfig(Default())
}

// WithConfig returns a new context with the provided Config.
func WithConfig(config Config) context.Context {
	return WithContext(context.Background(), config)
}

// WithContext sets the provided Config in the provided context.
func WithContext(parent context.Context, config Config) context.Context {
	if parent == nil {
		panic("parent context is nil")
	}
	return context.WithValue(
		parent,
		configContextKeyValue,
		&threadSafeConfig{Config: config})
}

// UpdateContext allows the Config in the provided context to be updated.
// This function returns the same context passed into the ctx parameter.
// This function panics if the provided context is nil, does not contain a
// Config, or setFn is nil.
// This function is thread-safe.
func UpdateContext(ctx context.Context, setFn func(config *Config)) context.Context {
	if ctx == nil {
		panic("context is nil")
	}
	if setFn == nil {
		panic("setFn is nil")
	}
	obj := ctx.Value(configContextKeyValue)
	if obj == nil {
		panic("config is missing from context")
	}
	config := obj.(*threadSafeConfig)
	config.Lock()
	defer config.Unlock()
	copyOfConfig := config.Config
	setFn(&copyOfConfig)
	config.Config = copyOfConfig
	return ctx
}

// FromContext returns the Config from the provided context.
// This function panics if the provided context is nil or does not contain a
// Config.
// This function is thread-safe.
func FromContext(ctx context.Context) Config {
	if ctx == nil {
		panic("context is nil")
	}
	config, ok := fromContext(ctx)
	if !ok {
		panic("config is missing from context")
	}
	return config
}

// FromContextOrDefault returns the Config from the provided context, or the
// default Config if ctx is nil or does not contain one.
// This function is thread-safe.
func FromContextOrDefault(ctx context.Context) Config {
	if ctx != nil {
		if config, ok := fromContext(ctx); ok {
			return config
		}
	}
	return Default()
}

func fromContext(ctx context.Context) (Config, bool) {
	obj := ctx.Value(configContextKeyValue)
	if obj == nil {
		return Config{}, false
	}
	config := obj.(*threadSafeConfig)
	config.RLock()
	defer config.RUnlock()
	return config.Config, true // return by value is a copy
}
