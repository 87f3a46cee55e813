package rpc

import (
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/storage"
)

func getInfo(custom *config.Custom, store storage.Store) (map[string]interface{}, error) {
	values, err := store.ListValues()
	if err != nil {
		return nil, err
	}
	datasets, err := store.ListDatasets()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"version":  config.BuildVersion,
		"scale":    custom.Number.Scale,
		"rounding": custom.RoundingMode().String(),
		"values":   len(values),
		"datasets": len(datasets),
	}, nil
}
