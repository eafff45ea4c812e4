package calculators

import (
	"fmt"
	"math"

	"github.com/sheetworks/cut-estimator/internal/estimation"
)

func getFloat(p estimation.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		if err := requireFinite(p.Key, v); err != nil {
			return 0, err
		}
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return estimation.ParseNumber(p.Key, v) // raw user input
	case nil:
		return 0, estimation.NewErrMissing(p.Key)
	default:
		return 0, estimation.NewErrNotNumeric(p.Key, fmt.Sprintf("%v (type: %T)", p.Value, p.Value))
	}
}

// requireFloat extracts the float param key, reporting it as missing when absent.
func requireFloat(params map[string]estimation.Param, key string) (float64, error) {
	p, ok := params[key]
	if !ok {
		return 0, estimation.NewErrMissing(key)
	}
	return getFloat(p)
}

// requireFinite rejects NaN and infinite values of field as not numeric.
func requireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return estimation.NewErrNotNumeric(field, v)
	}
	return nil
}

// rowConstant dereferences a reference row constant, reporting it as missing when absent.
func rowConstant(v *float64, field string) (float64, error) {
	if v == nil {
		return 0, estimation.NewErrMissing(field)
	}
	return *v, nil
}

func outputs(kv ...any) []estimation.Param {
	params := make([]estimation.Param, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params = append(params, estimation.Param{Key: kv[i].(string), Value: kv[i+1]})
	}
	return params
}
