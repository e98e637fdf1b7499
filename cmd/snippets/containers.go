package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/algorithms/containers"
)

type entry struct {
	Key   string `json:"key" yaml:"key"`
	Value int    `json:"value" yaml:"value"`
}

type containersResult struct {
	SortedSet    []int   `json:"sorted_set" yaml:"sorted_set"`
	HashSet      []int   `json:"hash_set" yaml:"hash_set"`
	SetHas4      bool    `json:"set_has_4" yaml:"set_has_4"`
	OrderedMap   []entry `json:"ordered_map" yaml:"ordered_map"`
	HashMap      []entry `json:"hash_map" yaml:"hash_map"`
	MapHasBanana bool    `json:"map_has_banana" yaml:"map_has_banana"`
}

func (r containersResult) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sorted set (ascending):   %s\n", joinInts(r.SortedSet))
	fmt.Fprintf(&b, "hash set (random order):  %s\n", joinInts(r.HashSet))
	if r.SetHas4 {
		b.WriteString("Found 4\n")
	}
	b.WriteString("ordered map (by key):\n")
	for _, e := range r.OrderedMap {
		fmt.Fprintf(&b, "  %s: %d\n", e.Key, e.Value)
	}
	b.WriteString("hash map (random order):\n")
	for _, e := range r.HashMap {
		fmt.Fprintf(&b, "  %s: %d\n", e.Key, e.Value)
	}
	if r.MapHasBanana {
		b.WriteString("Found banana")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *app) containersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "containers",
		Short: "Ordered vs unordered sets and maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runContainers()
		},
	}
}

func (a *app) runContainers() error {
	sample := []int{3, 1, 4, 1, 5, 9}

	sorted := containers.NewSortedSet(sample...)
	sorted.Insert(2)

	hashed := containers.NewSet(sample...)
	hashed.Insert(2)

	ordered := containers.NewOrderedMap[string, int]()
	hashMap := make(map[string]int)
	for i, k := range []string{"apple", "banana", "cherry", "date"} {
		ordered.Set(k, i+1)
		hashMap[k] = i + 1
	}

	var r containersResult
	r.SortedSet = sorted.Values()
	r.HashSet = hashed.Values()
	r.SetHas4 = sorted.Contains(4) && hashed.Contains(4)
	ordered.Range(func(k string, v int) bool {
		r.OrderedMap = append(r.OrderedMap, entry{Key: k, Value: v})
		return true
	})
	// Map iteration order changes between runs; collect it as is.
	for k, v := range hashMap {
		r.HashMap = append(r.HashMap, entry{Key: k, Value: v})
	}
	_, inOrdered := ordered.Get("banana")
	_, inHash := hashMap["banana"]
	r.MapHasBanana = inOrdered && inHash
	return a.out.Render(r)
}
