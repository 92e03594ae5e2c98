package tables

// Published generator maps: the frozen label→index numbering that all
// persisted tables were generated under. These are validation references
// injected into Validate, never an authority for generation — the maps are
// always rebuilt from the algebra first. If a rebuild stops matching, the
// enumeration convention has shifted and every persisted artifact must be
// regenerated together with these constants.

// PublishedGeneratorMap1Q is the frozen 1-qubit generator numbering.
var PublishedGeneratorMap1Q = GeneratorMap{
	"id(0)":   0,
	"h(0)":    1,
	"sxdg(0)": 2,
	"s(0)":    4,
	"x(0)":    6,
	"sx(0)":   8,
	"y(0)":    12,
	"z(0)":    18,
	"sdg(0)":  22,
}

// PublishedGeneratorMap2Q is the frozen 2-qubit generator numbering.
// Single-qubit gates sit in the entangler-free block; cx(0,1) opens the
// single-entangler block at 576, with the reversed cx and the symmetric cz
// deeper in the same block.
var PublishedGeneratorMap2Q = GeneratorMap{
	"id(0)":   0,
	"id(1)":   0,
	"h(0)":    1,
	"h(1)":    2,
	"sxdg(0)": 4,
	"sxdg(1)": 12,
	"s(0)":    8,
	"s(1)":    24,
	"x(0)":    36,
	"x(1)":    144,
	"sx(0)":   40,
	"sx(1)":   156,
	"y(0)":    72,
	"y(1)":    288,
	"z(0)":    108,
	"z(1)":    432,
	"sdg(0)":  116,
	"sdg(1)":  456,
	"cx(0,1)": 576,
	"cx(1,0)": 851,
	"cz(0,1)": 806,
	"cz(1,0)": 806,
}
