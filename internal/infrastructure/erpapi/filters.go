package erpapi

import (
	"encoding/json"
	"reflect"
	"time"
)

// encodeFilters serializa los filtros a JSON quitando strings vacíos, slices vacíos,
// fechas cero y nils. Devuelve false si no queda ningún filtro.
func encodeFilters(filters map[string]any) (string, bool) {
	clean := make(map[string]any, len(filters))
	for k, v := range filters {
		if isEmptyFilter(v) {
			continue
		}
		if t, ok := v.(time.Time); ok {
			v = t.Format(dateLayout)
		}
		clean[k] = v
	}
	if len(clean) == 0 {
		return "", false
	}
	b, err := json.Marshal(clean)
	if err != nil {
		return "", false
	}
	return string(b), true
}

func isEmptyFilter(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case time.Time:
		return x.IsZero()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer:
		return rv.IsNil()
	}
	return false
}
