// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package filter

import (
	"strconv"
	"strings"
)

// resolvePath walks a dotted path with optional bracket indices (e.g.
// "data.items[0].name") against root, returning undefinedValue{} if any
// segment is missing.
func resolvePath(root map[string]interface{}, path string) interface{} {
	var current interface{} = root
	for _, segment := range splitPath(path) {
		if segment.index != nil {
			arr, ok := current.([]interface{})
			if !ok || *segment.index < 0 || *segment.index >= len(arr) {
				return undefinedValue{}
			}
			current = arr[*segment.index]
			continue
		}
		m, ok := current.(map[string]interface{})
		if !ok {
			return undefinedValue{}
		}
		v, ok := m[segment.name]
		if !ok {
			return undefinedValue{}
		}
		current = v
	}
	return current
}

type pathSegment struct {
	name  string
	index *int
}

// splitPath parses "a.b[2].c" into segments, each either a map key or (for
// a bracketed numeric suffix) an array index applied to the preceding key.
func splitPath(path string) []pathSegment {
	var segments []pathSegment
	for _, part := range strings.Split(path, ".") {
		name := part
		for {
			open := strings.IndexByte(name, '[')
			if open < 0 {
				segments = append(segments, pathSegment{name: name})
				break
			}
			close := strings.IndexByte(name, ']')
			if close < open {
				segments = append(segments, pathSegment{name: name})
				break
			}
			if open > 0 {
				segments = append(segments, pathSegment{name: name[:open]})
			}
			if idx, err := strconv.Atoi(name[open+1 : close]); err == nil {
				i := idx
				segments = append(segments, pathSegment{index: &i})
			}
			name = name[close+1:]
			if name == "" {
				break
			}
		}
	}
	return segments
}

func isUndefined(v interface{}) bool {
	_, ok := v.(undefinedValue)
	return ok
}
