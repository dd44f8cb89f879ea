// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		contents    string
		expectedErr error
		check       func(*require.Assertions, *Config)
	}{
		{
			name:     "empty file keeps defaults",
			contents: "",
			check: func(require *require.Assertions, c *Config) {
				require.Equal(NewDefaultConfig(), c)
			},
		},
		{
			name: "overrides",
			contents: `
logLevel: debug
databasePath: /tmp/greeting
greetingSeed: hello 456
counter: 3
trace:
  enabled: true
  traceSampleRate: 0.5
`,
			check: func(require *require.Assertions, c *Config) {
				level, err := c.GetLogLevel()
				require.NoError(err)
				require.Equal(logging.Debug, level)
				require.Equal("/tmp/greeting", c.DatabasePath)
				require.Equal("hello 456", c.GreetingSeed)
				require.Equal(uint32(3), c.Counter)
				require.Equal(uint64(4), c.AccountSpace)
				require.True(c.Trace.Enabled)
				require.Equal(0.5, c.Trace.TraceSampleRate)
			},
		},
		{
			name:        "unknown field",
			contents:    "unknown: 1\n",
			expectedErr: ErrInvalidConfig,
		},
		{
			name:        "bad log level",
			contents:    "logLevel: loud\n",
			expectedErr: ErrInvalidConfig,
		},
		{
			name:        "seed too long",
			contents:    "greetingSeed: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n",
			expectedErr: ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(os.WriteFile(path, []byte(tt.contents), 0o600))

			c, err := Load(path)
			require.ErrorIs(err, tt.expectedErr)
			if tt.check != nil {
				tt.check(require, c)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	require := require.New(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(err)
	require.Equal(NewDefaultConfig(), c)

	c, err = Load("")
	require.NoError(err)
	require.Equal(NewDefaultConfig(), c)
}
