/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package director

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NormalizeByeRounds coerces a stored intentional-bye value into a sorted
// unique round set. Stores have recorded this as an array, a scalar, a JSON
// string, or a comma-separated string; all are accepted.
func NormalizeByeRounds(raw interface{}) (map[int]bool, error) {
	out := make(map[int]bool)
	if raw == nil {
		return out, nil
	}

	switch v := raw.(type) {
	case int:
		addRound(out, v)
	case int64:
		addRound(out, int(v))
	case float64:
		addRound(out, int(v))
	case []int:
		for _, n := range v {
			addRound(out, n)
		}
	case []interface{}:
		for _, item := range v {
			switch n := item.(type) {
			case float64:
				addRound(out, int(n))
			case int:
				addRound(out, n)
			case string:
				if err := addRoundString(out, n); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("bye rounds: unsupported element %T", item)
			}
		}
	case string:
		s := strings.TrimSpace(v)
		if s == "" || s == "null" {
			return out, nil
		}
		if strings.HasPrefix(s, "[") {
			var arr []interface{}
			if err := json.Unmarshal([]byte(s), &arr); err != nil {
				return nil, fmt.Errorf("bye rounds: bad JSON %q: %w", s, err)
			}
			return NormalizeByeRounds(arr)
		}
		for _, part := range strings.Split(s, ",") {
			if err := addRoundString(out, part); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("bye rounds: unsupported type %T", raw)
	}

	return out, nil
}

func addRound(set map[int]bool, n int) {
	if n > 0 {
		set[n] = true
	}
}

func addRoundString(set map[int]bool, s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("bye rounds: bad round %q", s)
	}
	addRound(set, n)

	return nil
}
