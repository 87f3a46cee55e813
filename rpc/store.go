package rpc

import (
	"fmt"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/storage"
)

func setValue(store storage.Store, params []interface{}) (map[string]interface{}, error) {
	name, err := paramString(params, 0)
	if err != nil {
		return nil, err
	}
	r, err := paramRational(params, 1)
	if err != nil {
		return nil, err
	}
	err = store.WriteValue(name, r)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": name, "value": r}, nil
}

func getValue(store storage.Store, params []interface{}) (map[string]interface{}, error) {
	name, err := paramString(params, 0)
	if err != nil {
		return nil, err
	}
	r, found, err := store.ReadValue(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("value %s not found", name)
	}
	return map[string]interface{}{"name": name, "value": r}, nil
}

func listValues(store storage.Store) (map[string]interface{}, error) {
	values, err := store.ListValues()
	if err != nil {
		return nil, err
	}
	result := make(map[string]interface{}, len(values))
	for name, r := range values {
		result[name] = r
	}
	return result, nil
}

func listDatasets(store storage.Store) ([]map[string]interface{}, error) {
	datasets, err := store.ListDatasets()
	if err != nil {
		return nil, err
	}
	result := make([]map[string]interface{}, 0, len(datasets))
	for _, d := range datasets {
		result = append(result, map[string]interface{}{
			"id":         d.Id,
			"name":       d.Name,
			"fields":     d.Fields,
			"created_at": d.CreatedAt,
		})
	}
	return result, nil
}

func sumDataset(custom *config.Custom, store storage.Store, params []interface{}) (map[string]interface{}, error) {
	name, err := paramString(params, 0)
	if err != nil {
		return nil, err
	}
	field, err := paramString(params, 1)
	if err != nil {
		return nil, err
	}
	d, err := store.ReadDataset(name)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("dataset %s not found", name)
	}
	reader, err := d.Reader(custom)
	if err != nil {
		return nil, err
	}
	i, err := reader.FieldLookup(field)
	if err != nil {
		return nil, err
	}
	sum, err := reader.SumIndex(i)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"dataset": d.Id,
		"records": reader.RecordCount(),
		"sum":     sum,
		"decimal": sum.DecimalString(custom.Number.Scale, custom.RoundingMode()),
	}, nil
}
