package envelope

import "fmt"

// Tabular zips resultSet.headers with each resultSet.rowSet row. Row order is preserved; the
// stats host encodes rank by position.
func (d Document) Tabular() ([]Record, error) {
	set, err := d.KeyedObject("resultSet")
	if err != nil {
		return nil, err
	}
	headers, err := headerNames(set["headers"])
	if err != nil {
		return nil, err
	}
	rows, ok := set["rowSet"].([]any)
	if !ok {
		return nil, &StructuralError{Path: "resultSet.rowSet", Reason: "expected array, got " + kindOf(set["rowSet"])}
	}
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		values, ok := row.([]any)
		if !ok {
			return nil, &StructuralError{Path: indexPath("resultSet.rowSet", i), Reason: "expected array, got " + kindOf(row)}
		}
		if len(values) != len(headers) {
			return nil, &StructuralError{
				Path:   indexPath("resultSet.rowSet", i),
				Reason: fmt.Sprintf("row has %d values, headers have %d", len(values), len(headers)),
			}
		}
		rec := make(Record, len(headers))
		for j, name := range headers {
			rec[name] = values[j]
		}
		records = append(records, rec)
	}
	return records, nil
}

func headerNames(node any) ([]string, error) {
	raw, ok := node.([]any)
	if !ok {
		return nil, &StructuralError{Path: "resultSet.headers", Reason: "expected array, got " + kindOf(node)}
	}
	names := make([]string, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, h := range raw {
		name, ok := h.(string)
		if !ok || name == "" {
			return nil, &StructuralError{Path: indexPath("resultSet.headers", i), Reason: "expected non-empty string header"}
		}
		if _, dup := seen[name]; dup {
			return nil, &StructuralError{Path: indexPath("resultSet.headers", i), Reason: "duplicate header " + name}
		}
		seen[name] = struct{}{}
		names[i] = name
	}
	return names, nil
}
