// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"os"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/greetingvm/auth"
	"github.com/ava-labs/greetingvm/client"
	"github.com/ava-labs/greetingvm/codec"
	"github.com/ava-labs/greetingvm/config"
	"github.com/ava-labs/greetingvm/consts"
	"github.com/ava-labs/greetingvm/crypto/ed25519"
	"github.com/ava-labs/greetingvm/greeter"
	"github.com/ava-labs/greetingvm/pebble"
	"github.com/ava-labs/greetingvm/runtime"
	"github.com/ava-labs/greetingvm/utils"

	gtrace "github.com/ava-labs/greetingvm/trace"
)

// CLI metadata lives next to account state, so its prefixes must never
// overlap with the storage layout.
const (
	defaultPrefix = 0xf0
	keyPrefix     = 0xf1

	defaultKeyKey = "key"
)

type Handler struct {
	cfg    *config.Config
	log    logging.Logger
	tracer trace.Tracer
	db     *pebble.Database
	rt     *runtime.Runtime

	programID codec.Address
}

func NewHandler(configFile string, dbPath string) (*Handler, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	level, err := cfg.GetLogLevel()
	if err != nil {
		return nil, err
	}
	log := logging.NewLogger(
		consts.Name,
		logging.NewWrappedCore(
			level,
			os.Stderr,
			logging.Colors.ConsoleEncoder(),
		),
	)
	path, err := utils.InitDirectory(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	db, registry, err := pebble.New(path, pebble.NewDefaultConfig())
	if err != nil {
		return nil, err
	}
	tracer, err := gtrace.New(&cfg.Trace)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	rt, err := runtime.New(log, tracer, registry)
	if err != nil {
		return nil, errors.Join(err, db.Close(), tracer.Close())
	}
	programID := codec.ProgramAddress(consts.GreeterProgram)
	if err := rt.Register(programID, greeter.New(log)); err != nil {
		return nil, errors.Join(err, db.Close(), tracer.Close())
	}
	return &Handler{
		cfg:       cfg,
		log:       log,
		tracer:    tracer,
		db:        db,
		rt:        rt,
		programID: programID,
	}, nil
}

func (h *Handler) Close() error {
	errs := wrappers.Errs{}
	errs.Add(
		h.tracer.Close(),
		h.db.Close(),
	)
	return errs.Err
}

func (h *Handler) StoreDefault(key string, value []byte) error {
	k := make([]byte, 1+len(key))
	k[0] = defaultPrefix
	copy(k[1:], []byte(key))
	return h.db.Put(k, value)
}

func (h *Handler) GetDefault(key string) ([]byte, error) {
	k := make([]byte, 1+len(key))
	k[0] = defaultPrefix
	copy(k[1:], []byte(key))
	v, err := h.db.Get(k)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (h *Handler) StoreKey(priv ed25519.PrivateKey) error {
	publicKey := priv.PublicKey()
	k := make([]byte, 1+ed25519.PublicKeyLen)
	k[0] = keyPrefix
	copy(k[1:], publicKey[:])
	has, err := h.db.Has(k)
	if err != nil {
		return err
	}
	if has {
		return ErrDuplicate
	}
	return h.db.Put(k, priv[:])
}

func (h *Handler) GetKey(publicKey ed25519.PublicKey) (ed25519.PrivateKey, error) {
	k := make([]byte, 1+ed25519.PublicKeyLen)
	k[0] = keyPrefix
	copy(k[1:], publicKey[:])
	v, err := h.db.Get(k)
	if errors.Is(err, database.ErrNotFound) {
		return ed25519.EmptyPrivateKey, ErrNoKeys
	}
	if err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	return ed25519.PrivateKey(v), nil
}

func (h *Handler) StoreDefaultKey(pk ed25519.PublicKey) error {
	return h.StoreDefault(defaultKeyKey, pk[:])
}

func (h *Handler) GetDefaultKey() (ed25519.PrivateKey, error) {
	v, err := h.GetDefault(defaultKeyKey)
	if err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	if len(v) != ed25519.PublicKeyLen {
		return ed25519.EmptyPrivateKey, ErrNoKeys
	}
	priv, err := h.GetKey(ed25519.PublicKey(v))
	if err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	utils.Outf("{{yellow}}address:{{/}} %s\n", auth.NewED25519Address(priv.PublicKey()))
	return priv, nil
}

// Client returns a client signing with the default key.
func (h *Handler) Client() (*client.Client, error) {
	priv, err := h.GetDefaultKey()
	if err != nil {
		return nil, err
	}
	return client.New(h.rt, h.db, auth.NewED25519Factory(priv), h.programID), nil
}

// Seed returns [flagSeed] or the configured greeting seed.
func (h *Handler) Seed(flagSeed string) string {
	if flagSeed != "" {
		return flagSeed
	}
	return h.cfg.GreetingSeed
}
