// SPDX-License-Identifier: MIT

package summary

import (
	"sort"

	"github.com/katalvlaran/algocmp/dataset"
)

// Keys names the grouping columns.
type Keys struct {
	Factor    string // categorical column
	Covariate string // numeric column
}

type groupKey struct {
	level string
	value float64
}

type bucket struct {
	key  groupKey
	rows []int
}

// partition splits ds rows into sorted buckets by (factor, covariate).
func partition(ds *dataset.Dataset, keys Keys) ([]bucket, error) {
	levels, err := ds.Categorical(keys.Factor)
	if err != nil {
		return nil, err
	}
	values, err := ds.Numeric(keys.Covariate)
	if err != nil {
		return nil, err
	}

	byKey := make(map[groupKey]int)
	buckets := make([]bucket, 0, 8)
	for r := range levels {
		k := groupKey{level: levels[r], value: values[r]}
		i, ok := byKey[k]
		if !ok {
			i = len(buckets)
			byKey[k] = i
			buckets = append(buckets, bucket{key: k})
		}
		buckets[i].rows = append(buckets[i].rows, r)
	}

	sort.Slice(buckets, func(i, j int) bool {
		a, b := buckets[i].key, buckets[j].key
		if a.level != b.level {
			return a.level < b.level
		}

		return a.value < b.value
	})

	return buckets, nil
}

func gather(col []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = col[r]
	}

	return out
}
