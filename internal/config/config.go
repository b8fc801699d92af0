package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

const envPrefix = "ROUTESIM_"

// Default returns the configuration used when no file or override is present.
func Default() *model.Config {
	return &model.Config{
		Session:       "call-audio-route",
		HTTPAddr:      ":8080",
		QueueCapacity: 64,
		JournalPath:   "routing-journal.jsonl",
		Log: model.LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Devices: []*model.BluetoothDevice{},
	}
}

// Load reads the repository (which starts from Default), applies environment
// overrides from lookup and validates the result.
func Load(ctx context.Context, repo ports.ConfigRepository, lookup func(string) (string, bool)) (*model.Config, error) {
	cfg, err := repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := ApplyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with ROUTESIM_* variables.
func ApplyEnv(cfg *model.Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(envPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = n
		return nil
	}

	str("SESSION", &cfg.Session)
	str("HTTP_ADDR", &cfg.HTTPAddr)
	str("JOURNAL_PATH", &cfg.JournalPath)
	str("SCENARIO", &cfg.ScenarioPath)
	str("LOG_FILE", &cfg.Log.File)
	return errors.Join(
		num("QUEUE_CAPACITY", &cfg.QueueCapacity),
		num("LOG_MAX_SIZE_MB", &cfg.Log.MaxSizeMB),
		num("LOG_MAX_BACKUPS", &cfg.Log.MaxBackups),
	)
}

func Validate(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	var errs []error
	if strings.TrimSpace(cfg.Session) == "" {
		errs = append(errs, errors.New("session must not be empty"))
	}
	if cfg.QueueCapacity <= 0 {
		errs = append(errs, fmt.Errorf("queue_capacity must be positive, got %d", cfg.QueueCapacity))
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 {
		errs = append(errs, errors.New("log rotation settings must not be negative"))
	}
	seen := make(map[string]bool, len(cfg.Devices))
	for i, d := range cfg.Devices {
		switch {
		case d == nil:
			errs = append(errs, fmt.Errorf("devices[%d] is empty", i))
		case d.Address == "":
			errs = append(errs, fmt.Errorf("devices[%d]: address is required", i))
		case seen[d.Address]:
			errs = append(errs, fmt.Errorf("devices[%d]: duplicate address %s", i, d.Address))
		case !d.Kind.Valid():
			errs = append(errs, fmt.Errorf("devices[%d]: unknown kind %q", i, d.Kind))
		}
		if d != nil {
			seen[d.Address] = true
		}
	}
	return errors.Join(errs...)
}
