package tables

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/qubitkit/clifftab/clifford"
	"github.com/qubitkit/clifftab/enum"
)

// GeneratorMap maps a generator label — gate name plus the qubit(s) it acts
// on, e.g. "h(0)" or "cx(1,0)" — to the group index of its minimal circuit.
// It is always rebuilt from the algebra, never hand-edited; the published
// constants exist solely to detect numbering drift.
type GeneratorMap map[string]int32

// GeneratorLabel renders the canonical label of a gate on specific qubits.
func GeneratorLabel(g clifford.Gate, qubits ...int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = strconv.Itoa(q)
	}

	return fmt.Sprintf("%s(%s)", g, strings.Join(parts, ","))
}

// BuildGeneratorMap1Q reconstructs the 1-qubit generator map: each
// elementary gate as a one-gate circuit, canonicalized and resolved.
// Deterministic by construction; run it twice and the results are equal.
// Complexity: O(G).
func BuildGeneratorMap1Q(ix *enum.Index) (GeneratorMap, error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	m := make(GeneratorMap, len(clifford.OneQubitGates))
	for _, g := range clifford.OneQubitGates {
		if err := m.add(ix, 1, g, 0); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// BuildGeneratorMap2Q reconstructs the 2-qubit generator map: every
// single-qubit gate on either qubit, plus cx and cz in both qubit orders.
// Complexity: O(G).
func BuildGeneratorMap2Q(ix *enum.Index) (GeneratorMap, error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	m := make(GeneratorMap, 2*len(clifford.OneQubitGates)+2*len(clifford.TwoQubitGates))
	for _, g := range clifford.OneQubitGates {
		for q := 0; q < 2; q++ {
			if err := m.add(ix, 2, g, q); err != nil {
				return nil, err
			}
		}
	}
	for _, g := range clifford.TwoQubitGates {
		for _, qs := range [][2]int{{0, 1}, {1, 0}} {
			if err := m.add(ix, 2, g, qs[0], qs[1]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// add resolves one generator circuit and records it under its label.
func (m GeneratorMap) add(ix *enum.Index, n int, g clifford.Gate, qubits ...int) error {
	e, err := clifford.NewGate(n, g, qubits...)
	if err != nil {
		return fmt.Errorf("tables: generator %s: %w", GeneratorLabel(g, qubits...), err)
	}
	idx, err := ix.Resolve(e)
	if err != nil {
		return fmt.Errorf("tables: generator %s: %w", GeneratorLabel(g, qubits...), err)
	}
	m[GeneratorLabel(g, qubits...)] = int32(idx)

	return nil
}

// Validate compares the rebuilt map against the published constant. Any
// difference — a missing label, an extra label, a shifted index — returns
// ErrGeneratorMapDrift naming the first offender, and the caller must treat
// every previously persisted table as invalid. Run this before any sparse
// build that consumes the map.
// Complexity: O(G).
func (m GeneratorMap) Validate(published GeneratorMap) error {
	for _, label := range m.sortedLabels() {
		want, ok := published[label]
		if !ok {
			return fmt.Errorf("tables: label %q not in published map: %w", label, ErrGeneratorMapDrift)
		}
		if got := m[label]; got != want {
			return fmt.Errorf("tables: label %q rebuilt as %d, published %d: %w", label, got, want, ErrGeneratorMapDrift)
		}
	}
	for label := range published {
		if _, ok := m[label]; !ok {
			return fmt.Errorf("tables: published label %q not rebuilt: %w", label, ErrGeneratorMapDrift)
		}
	}

	return nil
}

// Indices returns the sorted distinct group indices of the map's values:
// the column set of the sparse composition table.
// Complexity: O(G log G).
func (m GeneratorMap) Indices() []int32 {
	seen := make(map[int32]struct{}, len(m))
	for _, idx := range m {
		seen[idx] = struct{}{}
	}
	out := make([]int32, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// sortedLabels returns the map's labels in deterministic order.
func (m GeneratorMap) sortedLabels() []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}
