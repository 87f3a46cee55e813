package storage

import (
	"github.com/MixinNetwork/rational/csv"
	"github.com/MixinNetwork/rational/number"
)

type Store interface {
	Close() error

	WriteValue(name string, r number.Rational) error
	ReadValue(name string) (number.Rational, bool, error)
	ListValues() (map[string]number.Rational, error)
	RemoveValue(name string) error

	WriteDataset(name string, reader *csv.Reader) (string, error)
	ReadDataset(name string) (*Dataset, error)
	ListDatasets() ([]*Dataset, error)
	RemoveDataset(name string) error
}
