package config

import "strings"

// PathSeparator separates the segments of a dot-path.
const PathSeparator = "."

// SplitPath splits a dot-path such as "database.mysql.host" into its segments.
// Empty segments are kept so that Resolve can reject them.
func SplitPath(dotted string) []string {
	return strings.Split(dotted, PathSeparator)
}

// Resolve walks tree one segment at a time and returns the value stored at the
// last segment. The boolean is false when the path does not resolve exactly:
// a segment is missing, an intermediate value is not a mapping, the path is
// empty or one of its segments is empty. A stored nil is returned with true.
func Resolve(tree Tree, path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	var cursor any = tree

	for _, segment := range path {
		if segment == "" {
			return nil, false
		}

		level, isMapping := asMapping(cursor)
		if !isMapping {
			return nil, false
		}

		value, found := level[segment]
		if !found {
			return nil, false
		}

		cursor = value
	}

	return cursor, true
}

func asMapping(value any) (map[string]any, bool) {
	switch mapping := value.(type) {
	case Tree:
		return mapping, true
	case map[string]any:
		return mapping, true
	default:
		return nil, false
	}
}
