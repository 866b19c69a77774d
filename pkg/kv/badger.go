package kv

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

type badgerStorage struct {
	db *badger.DB
}

// NewBadger opens a badger database at path, or an in-memory one when path is empty.
func NewBadger(path string) (Storage, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	} else {
		opts.SyncWrites = true
		opts.CompactL0OnClose = true
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "badger.Open")
	}
	return &badgerStorage{db: db}, nil
}

func (s *badgerStorage) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

func (s *badgerStorage) Set(_ context.Context, key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *badgerStorage) Delete(_ context.Context, key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *badgerStorage) Close() error {
	return s.db.Close()
}
