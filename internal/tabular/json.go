package tabular

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// kv is one key/value pair of an object, decoded in wire order.
type kv struct {
	key string
	val interface{} // string, bool, int64, float64, nil, or []kv for nested objects
}

// FromJSON builds a TabularData from a JSON array of objects. The column
// set is the union of keys across objects, ordered by first appearance;
// missing keys yield Null. Nested objects are flattened into dot-path
// column names, depth-first, in a stable (first-seen) order.
func FromJSON(r io.Reader) (*TabularData, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return &TabularData{}, nil
		}
		return nil, &JSONError{Message: err.Error()}
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '[' {
		return nil, &JSONError{Message: "top-level JSON value must be an array of objects"}
	}

	var rows [][]kv
	for dec.More() {
		obj, err := decodeObject(dec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, obj)
	}
	if _, err := dec.Token(); err != nil {
		return nil, &JSONError{Message: err.Error()}
	}

	order := make([]string, 0)
	seen := map[string]bool{}
	flatRows := make([]map[string]Value, len(rows))
	for ri, obj := range rows {
		flat := map[string]Value{}
		flattenKVInto(flat, &order, seen, "", obj)
		flatRows[ri] = flat
	}

	cols := make([]*Column, len(order))
	for i, name := range order {
		cols[i] = &Column{Name: name}
	}
	for _, flat := range flatRows {
		for i, name := range order {
			v, ok := flat[name]
			if !ok {
				v = Null
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}
	for _, c := range cols {
		c.InferType()
	}
	return &TabularData{Columns: cols}, nil
}

// decodeObject reads one JSON object from dec, preserving key order, which
// map[string]interface{} cannot do.
func decodeObject(dec *json.Decoder) ([]kv, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, &JSONError{Message: err.Error()}
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, &JSONError{Message: "array element must be an object"}
	}
	var out []kv
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &JSONError{Message: err.Error()}
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &JSONError{Message: "object key must be a string"}
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, &JSONError{Path: key, Message: err.Error()}
		}
		out = append(out, kv{key: key, val: val})
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, &JSONError{Message: err.Error()}
	}
	return out, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var nested []kv
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key := keyTok.(string)
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				nested = append(nested, kv{key: key, val: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return nested, nil
		case '[':
			// Arrays nested inside row objects are not part of the tabular
			// model; render them as their compact JSON text form.
			var raws []json.RawMessage
			for dec.More() {
				var raw json.RawMessage
				if err := dec.Decode(&raw); err != nil {
					return nil, err
				}
				raws = append(raws, raw)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			parts := make([]string, len(raws))
			for i, raw := range raws {
				parts[i] = string(raw)
			}
			return "[" + strings.Join(parts, ",") + "]", nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		return t, nil
	case string, bool, nil:
		return t, nil
	default:
		return t, nil
	}
}

func flattenKVInto(dst map[string]Value, order *[]string, seen map[string]bool, prefix string, pairs []kv) {
	for _, p := range pairs {
		path := p.key
		if prefix != "" {
			path = prefix + "." + p.key
		}
		switch val := p.val.(type) {
		case []kv:
			flattenKVInto(dst, order, seen, path, val)
			continue
		case json.Number:
			dst[path] = numberValue(val)
		case string:
			dst[path] = Str(val)
		case bool:
			dst[path] = Bool(val)
		case nil:
			dst[path] = Null
		default:
			dst[path] = Str(fmt.Sprintf("%v", val))
		}
		if !seen[path] {
			seen[path] = true
			*order = append(*order, path)
		}
	}
}

func numberValue(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return Int(i)
	}
	f, _ := n.Float64()
	return Float(f)
}

// ToJSON serializes t back to a JSON array of objects, un-flattening any
// dot-path column name into nested objects. Two column paths colliding
// after un-flattening (e.g. "a" and "a.b" both present) is a JSONError.
func ToJSON(t *TabularData, w io.Writer) error {
	n := t.RowCount()
	rows := make([]map[string]interface{}, n)
	for r := 0; r < n; r++ {
		obj := map[string]interface{}{}
		for _, col := range t.Columns {
			v := col.Values[r]
			if err := setPath(obj, strings.Split(col.Name, "."), jsonScalar(v)); err != nil {
				return err
			}
		}
		rows[r] = obj
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(rows); err != nil {
		return &JSONError{Message: err.Error()}
	}
	return nil
}

func jsonScalar(v Value) interface{} {
	switch v.Kind {
	case KindNull:
		return nil
	case KindInt:
		return v.I
	case KindFloat:
		return v.F
	case KindBool:
		return v.B
	case KindString:
		return v.S
	default:
		return nil
	}
}

func setPath(obj map[string]interface{}, path []string, v interface{}) error {
	if len(path) == 1 {
		if existing, ok := obj[path[0]]; ok {
			if _, isMap := existing.(map[string]interface{}); isMap {
				return &JSONError{Path: path[0], Message: "column name collides with a nested object path"}
			}
		}
		obj[path[0]] = v
		return nil
	}
	child, ok := obj[path[0]].(map[string]interface{})
	if !ok {
		if _, present := obj[path[0]]; present {
			return &JSONError{Path: path[0], Message: "scalar column name collides with a nested object path"}
		}
		child = map[string]interface{}{}
		obj[path[0]] = child
	}
	return setPath(child, path[1:], v)
}
