package rpc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/number"
)

func paramString(params []interface{}, i int) (string, error) {
	if len(params) <= i {
		return "", fmt.Errorf("missing param %d", i)
	}
	switch p := params[i].(type) {
	case string:
		return p, nil
	case json.Number:
		return p.String(), nil
	}
	return "", fmt.Errorf("invalid param %d %v", i, params[i])
}

func paramRational(params []interface{}, i int) (number.Rational, error) {
	s, err := paramString(params, i)
	if err != nil {
		return number.Zero, err
	}
	return number.Parse(s)
}

func paramInt(params []interface{}, i int) (int64, error) {
	s, err := paramString(params, i)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}

// paramScaleMode reads the optional scale and rounding mode following
// the value, falling back to the configured ones.
func paramScaleMode(custom *config.Custom, params []interface{}, i int) (int32, number.RoundingMode, error) {
	scale, mode := custom.Number.Scale, custom.RoundingMode()
	if len(params) > i {
		s, err := paramInt(params, i)
		if err != nil {
			return 0, mode, err
		}
		if s < -config.MaxScale || s > config.MaxScale {
			return 0, mode, fmt.Errorf("invalid scale %d", s)
		}
		scale = int32(s)
	}
	if len(params) > i+1 {
		s, err := paramString(params, i+1)
		if err != nil {
			return 0, mode, err
		}
		mode, err = number.ParseRoundingMode(s)
		if err != nil {
			return 0, mode, err
		}
	}
	return scale, mode, nil
}
