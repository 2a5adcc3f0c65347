package envelope

// Broadcast is one flattened branch of a game's broadcast tree.
type Broadcast struct {
	Category    string
	Subcategory string
	Names       []string
}

// broadcast categories and the subcontainers walked under each, in output order.
var broadcastTree = []struct {
	category      string
	subcategories []string
}{
	{"video", []string{"national", "canadian", "spanish_national", "vTeam", "hTeam", "spanish_vTeam", "spanish_hTeam"}},
	{"audio", []string{"national", "vTeam", "hTeam", "spanish_national", "spanish_vTeam", "spanish_hTeam"}},
}

// Broadcasts flattens rec.watch.broadcast into (category, subcategory, names) triples. Absent or
// empty subcontainers are skipped; containers of the wrong type are structural errors.
func Broadcasts(rec Record) ([]Broadcast, error) {
	watch, found := rec["watch"]
	if !found || watch == nil {
		return nil, nil
	}
	broadcast, err := optionalObject(watch, "watch", "broadcast")
	if err != nil || broadcast == nil {
		return nil, err
	}
	var out []Broadcast
	for _, branch := range broadcastTree {
		category, err := optionalObject(broadcast, "watch.broadcast", branch.category)
		if err != nil {
			return nil, err
		}
		if category == nil {
			continue
		}
		for _, sub := range branch.subcategories {
			path := "watch.broadcast." + branch.category + "." + sub
			names, err := broadcasterNames(category[sub], path)
			if err != nil {
				return nil, err
			}
			if len(names) == 0 {
				continue
			}
			out = append(out, Broadcast{Category: branch.category, Subcategory: sub, Names: names})
		}
	}
	return out, nil
}

// broadcasterNames accepts either {broadcasters:[...]} or a bare list of broadcasters.
func broadcasterNames(node any, path string) ([]string, error) {
	var list any
	switch v := node.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		list = v["broadcasters"]
		path += ".broadcasters"
	case []any:
		list = v
	default:
		return nil, &StructuralError{Path: path, Reason: "expected object or array, got " + kindOf(node)}
	}
	if list == nil {
		return nil, nil
	}
	items, ok := list.([]any)
	if !ok {
		return nil, &StructuralError{Path: path, Reason: "expected array, got " + kindOf(list)}
	}
	names := make([]string, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &StructuralError{Path: indexPath(path, i), Reason: "expected object, got " + kindOf(item)}
		}
		name, ok := obj["shortName"].(string)
		if !ok {
			return nil, &StructuralError{Path: indexPath(path, i) + ".shortName", Reason: "expected string, got " + kindOf(obj["shortName"])}
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func optionalObject(node any, path, key string) (map[string]any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, &StructuralError{Path: path, Reason: "expected object, got " + kindOf(node)}
	}
	child, found := obj[key]
	if !found || child == nil {
		return nil, nil
	}
	childObj, ok := child.(map[string]any)
	if !ok {
		return nil, &StructuralError{Path: path + "." + key, Reason: "expected object, got " + kindOf(child)}
	}
	return childObj, nil
}
