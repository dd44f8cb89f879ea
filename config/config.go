// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/greetingvm/consts"
	"github.com/ava-labs/greetingvm/greeting"
	"github.com/ava-labs/greetingvm/trace"
)

const (
	defaultLogLevel     = logging.Info
	defaultDatabasePath = ".greeting-cli"
	defaultSeed         = "hello 123"
	defaultCounter      = 7
)

type Config struct {
	LogLevel     string `yaml:"logLevel"`
	DatabasePath string `yaml:"databasePath"`

	// Seed the greeted account address is derived from.
	GreetingSeed string `yaml:"greetingSeed"`
	// Bytes allocated for a new greeted account.
	AccountSpace uint64 `yaml:"accountSpace"`
	// Counter sent by greet when none is given.
	Counter uint32 `yaml:"counter"`

	Trace trace.Config `yaml:"trace"`
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:     defaultLogLevel.String(),
		DatabasePath: defaultDatabasePath,
		GreetingSeed: defaultSeed,
		AccountSpace: greeting.RecordLen,
		Counter:      defaultCounter,
		Trace: trace.Config{
			AppName: consts.Name,
			Agent:   consts.Name,
			Version: consts.Version.String(),
		},
	}
}

// Load reads the YAML config at [path] on top of the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	c := NewDefaultConfig()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c, c.Verify()
}

func (c *Config) Verify() error {
	if _, err := c.GetLogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.GreetingSeed) > consts.MaxSeedLen {
		return fmt.Errorf("%w: greeting seed longer than %d bytes", ErrInvalidConfig, consts.MaxSeedLen)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: empty database path", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) GetLogLevel() (logging.Level, error) {
	return logging.ToLevel(c.LogLevel)
}
