package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseRangeList expands a sweep specification into positive integers.
// Accepted forms, comma-separated and freely mixed:
//
//	"4"          a single value
//	"1,2,4,8"    an explicit list
//	"1:8"        an inclusive range, step 1
//	"2:16:2"     an inclusive range with step
func parseRangeList(spec, label string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%s specification must not be empty", label)
	}

	var out []int
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if !strings.Contains(item, ":") {
			v, err := parsePositive(item, label)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			continue
		}

		parts := strings.Split(item, ":")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("invalid %s range %q (want start:end[:step])", label, item)
		}
		start, err := parsePositive(parts[0], label)
		if err != nil {
			return nil, err
		}
		end, err := parsePositive(parts[1], label)
		if err != nil {
			return nil, err
		}
		step := 1
		if len(parts) == 3 {
			if step, err = parsePositive(parts[2], label); err != nil {
				return nil, err
			}
		}
		if end < start {
			return nil, fmt.Errorf("invalid %s range %q: end below start", label, item)
		}
		for v := start; v <= end; v += step {
			out = append(out, v)
		}
	}
	return out, nil
}

func parsePositive(text, label string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < 1 {
		return 0, fmt.Errorf("invalid %s value %q (want a positive integer)", label, text)
	}
	return v, nil
}
