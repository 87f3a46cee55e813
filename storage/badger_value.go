package storage

import (
	"fmt"
	"strings"

	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/number"
	"github.com/dgraph-io/badger/v4"
)

const (
	valuePrefixName = "VALUE"
)

func (s *BadgerStore) WriteValue(name string, r number.Rational) error {
	if err := validateName(name); err != nil {
		return err
	}
	key := valueKey(name)
	val := msgpackMarshalPanic(r)
	err := s.valuesDB.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
	if err != nil {
		return err
	}
	s.cache.Set(key, val)
	logger.Verbosef("WriteValue(%s) => %s\n", name, r)
	return nil
}

func (s *BadgerStore) ReadValue(name string) (number.Rational, bool, error) {
	var r number.Rational
	key := valueKey(name)
	if val, ok := s.cache.HasGet(nil, key); ok {
		err := msgpackUnmarshal(val, &r)
		return r, true, err
	}

	txn := s.valuesDB.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return r, false, nil
	}
	if err != nil {
		return r, false, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return r, false, err
	}
	err = msgpackUnmarshal(val, &r)
	if err != nil {
		return r, true, err
	}
	s.cache.Set(key, val)
	return r, true, nil
}

func (s *BadgerStore) ListValues() (map[string]number.Rational, error) {
	txn := s.valuesDB.NewTransaction(false)
	defer txn.Discard()

	prefix := []byte(valuePrefixName)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	values := make(map[string]number.Rational)
	for it.Seek(prefix); it.Valid(); it.Next() {
		item := it.Item()
		name := string(item.Key()[len(prefix):])
		err := item.Value(func(v []byte) error {
			var r number.Rational
			err := msgpackUnmarshal(v, &r)
			values[name] = r
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (s *BadgerStore) RemoveValue(name string) error {
	key := valueKey(name)
	s.cache.Del(key)
	return s.valuesDB.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" || len(name) > 256 {
		return fmt.Errorf("invalid name %q", name)
	}
	return nil
}

func valueKey(name string) []byte {
	return append([]byte(valuePrefixName), name...)
}
