package rpc

import (
	"fmt"
	"strconv"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/number"
)

// Calculate applies the binary operation op to the parsed operands. The
// exponent of pow must be an integer and cmp yields -1, 0 or 1.
func Calculate(op string, a, b string) (string, error) {
	x, err := number.Parse(a)
	if err != nil {
		return "", err
	}
	if op == "pow" {
		e, err := strconv.Atoi(b)
		if err != nil {
			return "", fmt.Errorf("invalid exponent %s", b)
		}
		r, err := x.Pow(e)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}

	y, err := number.Parse(b)
	if err != nil {
		return "", err
	}
	var r number.Rational
	switch op {
	case "add":
		r, err = x.Add(y)
	case "sub":
		r, err = x.Sub(y)
	case "mul":
		r, err = x.Mul(y)
	case "div":
		r, err = x.Div(y)
	case "min":
		r = x.Min(y)
	case "max":
		r = x.Max(y)
	case "cmp":
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", fmt.Errorf("invalid operation %s", op)
	}
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func calc(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 3 {
		return nil, fmt.Errorf("invalid params count %d", len(params))
	}
	op, err := paramString(params, 0)
	if err != nil {
		return nil, err
	}
	a, err := paramString(params, 1)
	if err != nil {
		return nil, err
	}
	b, err := paramString(params, 2)
	if err != nil {
		return nil, err
	}
	result, err := Calculate(op, a, b)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"result": result}, nil
}

func roundValue(custom *config.Custom, params []interface{}) (map[string]interface{}, error) {
	x, err := paramRational(params, 0)
	if err != nil {
		return nil, err
	}
	scale, mode, err := paramScaleMode(custom, params, 1)
	if err != nil {
		return nil, err
	}
	r, err := x.Round(scale, mode)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"result": r.String()}, nil
}

func decimalValue(custom *config.Custom, params []interface{}) (map[string]interface{}, error) {
	x, err := paramRational(params, 0)
	if err != nil {
		return nil, err
	}
	scale, mode, err := paramScaleMode(custom, params, 1)
	if err != nil {
		return nil, err
	}
	result := map[string]interface{}{
		"result": x.DecimalString(scale, mode),
		"exact":  nil,
	}
	if d, err := x.ExactDecimal(); err == nil {
		result["exact"] = d.String()
	}
	return result, nil
}
