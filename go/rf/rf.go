// Package rf computes the Robinson-Foulds distance between two trees.
//
// The distance counts the bipartitions (leaf-label sets below internal
// edges) present in one tree's profile but not the other's, summed over both
// directions. Only topology matters; branch lengths never enter the metric.
// See https://en.wikipedia.org/wiki/Robinson%E2%80%93Foulds_metric.
package rf

import (
	"sort"
	"strings"

	"github.com/willf/bitset"

	"github.com/rcedgar/retree/go/newick"
	"github.com/rcedgar/retree/go/util"
)

// Result holds the outcome of comparing the bipartition profiles of two
// trees.
type Result struct {
	// Clusters1 and Clusters2 are the profile sizes of the two trees.
	Clusters1 int
	Clusters2 int
	// OnlyIn1 and OnlyIn2 hold the clusters present in one profile but not
	// the other, sorted by their formatted form for deterministic output.
	OnlyIn1 []util.StringSet
	OnlyIn2 []util.StringSet
	// Distance is len(OnlyIn1) + len(OnlyIn2).
	Distance int
	// Normalized is Distance / (Clusters1 + Clusters2), in [0, 1], or 0
	// when both profiles are empty.
	Normalized float64
}

// cluster pairs a label set with its encoding over the shared taxon index.
type cluster struct {
	labels util.StringSet
	bits   *bitset.BitSet
}

// Distance computes the Robinson-Foulds distance between two trees. The
// trees should share a leaf-label set for the metric to be meaningful;
// mismatched sets still produce a result, but every cluster containing a
// label unique to its own tree is unmatchable by construction. Neither tree
// is modified.
func Distance(t1, t2 *newick.Tree) Result {
	taxa := indexTaxa(t1, t2)
	p1 := encode(t1.Clusters(), taxa)
	p2 := encode(t2.Clusters(), taxa)
	only1 := subtract(p1, p2)
	only2 := subtract(p2, p1)
	d := len(only1) + len(only2)
	res := Result{
		Clusters1: len(p1),
		Clusters2: len(p2),
		OnlyIn1:   report(only1),
		OnlyIn2:   report(only2),
		Distance:  d,
	}
	if total := len(p1) + len(p2); total > 0 {
		res.Normalized = float64(d) / float64(total)
	}
	return res
}

// indexTaxa assigns a bit position to every leaf label of both trees, in
// sorted order so encodings are stable across runs.
func indexTaxa(t1, t2 *newick.Tree) map[string]uint {
	all := t1.LeafSet().Union(t2.LeafSet()).Keys()
	sort.Strings(all)
	taxa := make(map[string]uint, len(all))
	for i, label := range all {
		taxa[label] = uint(i)
	}
	return taxa
}

// encode converts a cluster profile to bitsets over the shared taxon index,
// so that equal label sets always compare equal with bitset.Equal.
func encode(clusters []util.StringSet, taxa map[string]uint) []cluster {
	ret := make([]cluster, 0, len(clusters))
	for _, labels := range clusters {
		bits := bitset.New(uint(len(taxa)))
		for label := range labels {
			bits.Set(taxa[label])
		}
		ret = append(ret, cluster{labels: labels, bits: bits})
	}
	return ret
}

// subtract returns the clusters of a that have no equal cluster in b.
func subtract(a, b []cluster) []cluster {
	var ret []cluster
	for _, c := range a {
		found := false
		for _, d := range b {
			if c.bits.Equal(d.bits) {
				found = true
				break
			}
		}
		if !found {
			ret = append(ret, c)
		}
	}
	return ret
}

// report extracts the label sets, sorted by their formatted form.
func report(clusters []cluster) []util.StringSet {
	ret := make([]util.StringSet, 0, len(clusters))
	for _, c := range clusters {
		ret = append(ret, c.labels)
	}
	sort.Slice(ret, func(i, j int) bool {
		return Format(ret[i]) < Format(ret[j])
	})
	return ret
}

// Format renders a cluster as its sorted labels joined by commas.
func Format(c util.StringSet) string {
	keys := c.Keys()
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
