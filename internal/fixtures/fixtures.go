// Package fixtures bundles named board-text fixtures used by tests and by
// the bench CLI subcommand. Endgame01 is ported from the original
// source's Criterion benchmark suite (benches/solver.rs), recoloured so
// that the side whose turn was being benchmarked becomes 'p' (the side to
// move) in this format. It is a frozen snapshot board kept for stable
// regression scoring, not a claim that it arose from a legal game replay.
package fixtures

// Endgame01 is a densely filled board used as a stable scoring regression:
// future changes to search or evaluation should be checked against
// solve(Endgame01, 7, Weak).
const Endgame01 = "" +
	"nnnnnnn\n" +
	"nnnnnnc\n" +
	"pccnnnp\n" +
	"ccpcppc\n" +
	"ccppccp\n" +
	"ppccppc"

// Beginning01 is a near-empty board (a single stone in the centre
// column, bottom row), useful as a cheap smoke-test fixture for shallow
// searches.
const Beginning01 = "" +
	"nnnnnnn\n" +
	"nnnnnnn\n" +
	"nnnnnnn\n" +
	"nnnnnnn\n" +
	"nnnnnnn\n" +
	"nnnpnnn"

// Named returns all bundled fixtures keyed by name, for the bench
// subcommand to iterate over.
func Named() map[string]string {
	return map[string]string{
		"endgame01":   Endgame01,
		"beginning01": Beginning01,
	}
}
