package storage

import (
	"fmt"
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/csv"
	"github.com/MixinNetwork/rational/logger"
	"github.com/dgraph-io/badger/v4"
	"github.com/gofrs/uuid"
)

const (
	datasetPrefixName = "DATASET"
)

type Dataset struct {
	Id        string
	Name      string
	Fields    []string
	Records   [][]string
	CreatedAt uint64
}

// Reader loads the dataset into a csv reader configured like custom.
func (d *Dataset) Reader(custom *config.Custom) (*csv.Reader, error) {
	r := csv.NewReader()
	if custom != nil {
		r.DateLayout = custom.CSV.DateLayout
	}
	err := r.Load(d.Fields, d.Records)
	return r, err
}

func (s *BadgerStore) WriteDataset(name string, reader *csv.Reader) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	d := &Dataset{
		Id:        id.String(),
		Name:      name,
		Fields:    reader.FieldNames(),
		Records:   reader.Records(),
		CreatedAt: uint64(time.Now().UnixNano()),
	}
	val := compressMsgpackMarshalPanic(d)
	if len(val) > config.DatasetMaximumSize {
		return "", fmt.Errorf("dataset %s too large %d", name, len(val))
	}

	err = s.datasetsDB.Update(func(txn *badger.Txn) error {
		return txn.Set(datasetKey(name), val)
	})
	if err != nil {
		return "", err
	}
	logger.Verbosef("WriteDataset(%s) => %s %d records %d bytes\n", name, d.Id, len(d.Records), len(val))
	return d.Id, nil
}

func (s *BadgerStore) ReadDataset(name string) (*Dataset, error) {
	txn := s.datasetsDB.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(datasetKey(name))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var d Dataset
	err = decompressMsgpackUnmarshal(val, &d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDatasets returns the datasets ordered by name, without records.
func (s *BadgerStore) ListDatasets() ([]*Dataset, error) {
	txn := s.datasetsDB.NewTransaction(false)
	defer txn.Discard()

	prefix := []byte(datasetPrefixName)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var datasets []*Dataset
	for it.Seek(prefix); it.Valid(); it.Next() {
		err := it.Item().Value(func(v []byte) error {
			var d Dataset
			err := decompressMsgpackUnmarshal(v, &d)
			if err != nil {
				return err
			}
			d.Records = nil
			datasets = append(datasets, &d)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return datasets, nil
}

func (s *BadgerStore) RemoveDataset(name string) error {
	return s.datasetsDB.Update(func(txn *badger.Txn) error {
		return txn.Delete(datasetKey(name))
	})
}

func datasetKey(name string) []byte {
	return append([]byte(datasetPrefixName), name...)
}
