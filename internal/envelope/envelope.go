// Package envelope flattens the NBA endpoints' JSON envelopes into per-record field maps.
//
// Each upstream family wraps its records differently: nested keyed dictionaries, header/rowSet
// tables, lists of result sets, or a bare object. Document exposes one accessor per shape so
// that decoders only ever see a flat Record.
package envelope

import (
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Record is one decode-ready mapping of field name to raw JSON value.
type Record = map[string]any

// numbers are kept as json.Number so text and numeric encodings reach the decoder unchanged.
var api = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Document is a parsed JSON payload.
type Document struct {
	root any
}

// Parse parses raw JSON. Invalid JSON is a StructuralError.
func Parse(raw []byte) (Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, &StructuralError{Path: "$", Reason: "empty document"}
	}
	var root any
	if err := api.Unmarshal(raw, &root); err != nil {
		return Document{}, &StructuralError{Path: "$", Reason: "invalid json", Err: err}
	}
	return Document{root: root}, nil
}

// Object returns the document root as a record (direct-object shape).
func (d Document) Object() (Record, error) {
	obj, ok := d.root.(map[string]any)
	if !ok {
		return nil, &StructuralError{Path: "$", Reason: "expected object, got " + kindOf(d.root)}
	}
	return obj, nil
}

// KeyedObject descends path from the root and returns the object found there.
func (d Document) KeyedObject(path ...string) (Record, error) {
	node, err := descend(d.root, path)
	if err != nil {
		return nil, err
	}
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, &StructuralError{Path: joinPath(path), Reason: "expected object, got " + kindOf(node)}
	}
	return obj, nil
}

// KeyedList descends path from the root and returns the array found there. Every element must
// be an object.
func (d Document) KeyedList(path ...string) ([]Record, error) {
	node, err := descend(d.root, path)
	if err != nil {
		return nil, err
	}
	return objectList(node, joinPath(path))
}

// ResultSetList scans the resultSets array for the entry holding key and returns its list.
func (d Document) ResultSetList(key string) ([]Record, error) {
	root, err := d.Object()
	if err != nil {
		return nil, err
	}
	sets, ok := root["resultSets"].([]any)
	if !ok {
		return nil, &StructuralError{Path: "resultSets", Reason: "expected array, got " + kindOf(root["resultSets"])}
	}
	for i, set := range sets {
		obj, ok := set.(map[string]any)
		if !ok {
			return nil, &StructuralError{Path: indexPath("resultSets", i), Reason: "expected object, got " + kindOf(set)}
		}
		if list, found := obj[key]; found {
			return objectList(list, indexPath("resultSets", i)+"."+key)
		}
	}
	return nil, &StructuralError{Path: "resultSets", Reason: "no result set holds " + key}
}

func descend(node any, path []string) (any, error) {
	for i, key := range path {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, &StructuralError{Path: joinPath(path[:i]), Reason: "expected object, got " + kindOf(node)}
		}
		next, found := obj[key]
		if !found {
			return nil, &StructuralError{Path: joinPath(path[:i+1]), Reason: "missing key"}
		}
		node = next
	}
	return node, nil
}

func objectList(node any, path string) ([]Record, error) {
	items, ok := node.([]any)
	if !ok {
		return nil, &StructuralError{Path: path, Reason: "expected array, got " + kindOf(node)}
	}
	records := make([]Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &StructuralError{Path: indexPath(path, i), Reason: "expected object, got " + kindOf(item)}
		}
		records = append(records, obj)
	}
	return records, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "number"
	}
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "$"
	}
	return strings.Join(path, ".")
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
