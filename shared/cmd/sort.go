package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fvbommel/sortorder"
)

// StringList represents the type for sorting nested string lists.
type StringList [][]string

func (a StringList) Len() int {
	return len(a)
}

func (a StringList) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

// Less compares the rows on their first differing column. Empty strings sort last.
func (a StringList) Less(i, j int) bool {
	x := 0
	for x = range a[i] {
		if x >= len(a[j]) || a[i][x] != a[j][x] {
			break
		}
	}

	if x >= len(a[j]) {
		return false
	}

	if a[i][x] == "" {
		return false
	}

	if a[j][x] == "" {
		return true
	}

	return sortorder.NaturalLess(a[i][x], a[j][x])
}

// SortByPrecedence sorts the given data by the columns in sortColumns, looked up by their position in
// displayColumns. Earlier sort columns take precedence and equal rows keep their order.
func SortByPrecedence(data [][]string, displayColumns string, sortColumns string) error {
	indices := make([]int, 0, len(sortColumns))
	for _, r := range sortColumns {
		index := strings.IndexRune(displayColumns, r)
		if index == -1 {
			return fmt.Errorf("Invalid sort column %q, not present in display columns %q", string(r), displayColumns)
		}

		for _, row := range data {
			if index >= len(row) {
				return fmt.Errorf("Index of sort column %q outside data range", string(r))
			}
		}

		indices = append(indices, index)
	}

	sort.SliceStable(data, func(i, j int) bool {
		for _, index := range indices {
			if data[i][index] == data[j][index] {
				continue
			}

			return sortorder.NaturalLess(data[i][index], data[j][index])
		}

		return false
	})

	return nil
}
