package knackhttp

import "fmt"

// The directory encodes field values in several shapes depending on the field
// type: plain strings, {raw}/{formatted} wrappers, structured address objects,
// {date, date_formatted} objects. One small decoder per shape keeps the mapper
// flat. Decoders never fail; anything unrecognized becomes "".

func decodeScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if raw, ok := t["raw"]; ok {
			return stringify(raw)
		}
		if formatted, ok := t["formatted"]; ok {
			return stringify(formatted)
		}
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func decodeAddress(v any) string {
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	city := stringify(m["city"])
	state := stringify(m["state"])
	if city != "" && state != "" {
		return city + ", " + state
	}
	if city != "" {
		return city
	}
	return state
}

func decodeDate(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if f, ok := t["date_formatted"]; ok {
			return stringify(f)
		}
		if d, ok := t["date"]; ok {
			return stringify(d)
		}
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
