// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"errors"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var _ database.KeyValueReaderWriterDeleter = (*Database)(nil)

type Config struct {
	Sync         bool
	MaxOpenFiles int
}

func NewDefaultConfig() Config {
	return Config{
		Sync:         true,
		MaxOpenFiles: 1_024,
	}
}

// Database is a durable key/value store backed by pebble.
type Database struct {
	db      *pebble.DB
	wo      *pebble.WriteOptions
	metrics *metrics
	closed  atomic.Bool
}

func New(file string, cfg Config) (*Database, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	db, err := pebble.Open(file, &pebble.Options{
		MaxOpenFiles: cfg.MaxOpenFiles,
	})
	if err != nil {
		return nil, nil, err
	}
	wo := pebble.NoSync
	if cfg.Sync {
		wo = pebble.Sync
	}
	return &Database{db: db, wo: wo, metrics: metrics}, registry, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	_, err := db.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (db *Database) Get(key []byte) ([]byte, error) {
	if db.closed.Load() {
		return nil, database.ErrClosed
	}
	db.metrics.gets.Inc()
	v, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// pebble only guarantees [v] until [closer] is closed.
	value := slices.Clone(v)
	if value == nil {
		value = []byte{}
	}
	return value, closer.Close()
}

func (db *Database) Put(key []byte, value []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	db.metrics.puts.Inc()
	return db.db.Set(key, value, db.wo)
}

func (db *Database) Delete(key []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	db.metrics.deletes.Inc()
	return db.db.Delete(key, db.wo)
}

func (db *Database) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return database.ErrClosed
	}
	return db.db.Close()
}
