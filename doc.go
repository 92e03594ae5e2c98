// Package clifftab generates lookup tables for the 1- and 2-qubit Clifford
// groups — canonical keys, a fixed element numbering, inverse and
// composition tables — and persists them as NumPy artifacts.
//
// 🚀 What is clifftab?
//
//	A deterministic table generator built from exact tableau algebra:
//		• clifford/ — symplectic tableau elements, phase-exact composition,
//		  adjoints, canonical keys and the layered circuit enumeration
//		• enum/     — the bijective number ↔ element ↔ key index
//		• tables/   — inverse tables, dense (24×24) and generator-restricted
//		  sparse (11520-row CSR) composition tables, generator maps with
//		  drift validation
//		• store/    — ".npy" persistence with optional snappy compression
//		• cmd/cliffgen — the generation pipeline as a CLI
//
// ✨ Why choose clifftab?
//
//   - Exact phases – signs are tracked through every conjugation, never
//     recomputed modulo Pauli
//   - Stable numbering – generator maps are rebuilt from the algebra and
//     validated against published constants before any artifact is written
//   - Array-native output – tables load straight into numerical runtimes
//
// Quick sketch of the 1-qubit numbering:
//
//	num = i + 2·j + 6·p  —  [H]^i · {–,SXdg,S}[j] · {–,X,Y,Z}[p]
//
// so element 0 is the identity, element 1 is h, element 5 is the h·s
// circuit, and all 24 products of the layers are distinct.
//
//	go get github.com/qubitkit/clifftab
package clifftab
