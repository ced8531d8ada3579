// Package search implements negamax alpha-beta search over Connect Four
// positions: move ordering, forced-reply detection, and depth-bounded leaf
// evaluation. All scores are reported from the side-to-move's perspective.
package search

import (
	"math"
	"math/bits"

	"github.com/rs/zerolog/log"

	"github.com/YKhan142008/c4solver/internal/eval"
	"github.com/YKhan142008/c4solver/internal/position"
)

// Mode selects solver strength.
type Mode int

const (
	// Weak reports only the sign and distance-to-mate of the outcome.
	Weak Mode = iota
	// Strong substitutes a positional heuristic at the depth horizon.
	Strong
)

func (m Mode) String() string {
	if m == Strong {
		return "strong"
	}
	return "weak"
}

// searchOrder visits the centre column first, matching the intuition that
// central moves usually dominate the principal variation in Connect Four.
var searchOrder = [position.BoardWidth]int{3, 2, 4, 1, 5, 0, 6}

// Result is the outcome of a Solve call.
type Result struct {
	Score int
	Move  uint64
	Nodes uint64
	// EndIn is meaningful only for Weak mode: the number of plies until
	// the proven outcome, or 0 if undetermined within the search depth.
	EndIn int
}

// Engine runs negamax alpha-beta search using a configurable leaf
// heuristic for Strong mode. The zero value uses the canonical material
// heuristic.
type Engine struct {
	// Heuristic scores non-terminal positions at the Strong-mode depth
	// horizon. Defaults to eval.Material.
	Heuristic eval.Heuristic
}

// Solve runs the default Engine (material heuristic) over p.
func Solve(p position.Position, depth uint8, mode Mode) Result {
	return Engine{}.Solve(p, depth, mode)
}

// Solve clamps depth to the number of remaining plies, runs negamax
// alpha-beta from the safe [math.MinInt32+2, math.MaxInt32-2] window, and
// reports the principal-variation move and score.
func (e Engine) Solve(p position.Position, depth uint8, mode Mode) Result {
	heuristic := e.Heuristic
	if heuristic == nil {
		heuristic = eval.Material
	}

	remaining := position.BoardSize - p.CountStones()
	if int(depth) > remaining {
		depth = uint8(remaining)
	}

	var nodes uint64
	s := &searcher{mode: mode, heuristic: heuristic, nodes: &nodes}
	score, move := s.negamax(p, int(depth), math.MinInt32+2, math.MaxInt32-2)

	var endIn int
	if mode == Weak {
		if score != 0 {
			abs := score
			if abs < 0 {
				abs = -abs
			}
			endIn = int(depth) - abs + 1
		}
	}

	result := Result{Score: score, Move: move, Nodes: nodes, EndIn: endIn}
	log.Debug().
		Uint8("depth", depth).
		Str("mode", mode.String()).
		Int("score", result.Score).
		Uint64("nodes", result.Nodes).
		Msg("search complete")
	return result
}

type searcher struct {
	mode      Mode
	heuristic eval.Heuristic
	nodes     *uint64
}

func (s *searcher) lossScore(depth int) int {
	if s.mode == Strong {
		return -(100 + depth)
	}
	return -(1 + depth)
}

func (s *searcher) forcedLossScore(depth int) int {
	if s.mode == Strong {
		return -(99 + depth)
	}
	return -depth
}

// negamax returns (score, bestMove) for p from the side-to-move's
// perspective. move is 0 only when the position is terminal on entry, no
// legal move exists, or depth is 0.
func (s *searcher) negamax(p position.Position, depth int, alpha, beta int) (int, uint64) {
	if p.HasLost() {
		return s.lossScore(depth), 0
	}
	*s.nodes++

	legal := p.LegalMoves()
	if legal == 0 {
		// Board full: a draw, by convention scored zero for both modes.
		return 0, 0
	}

	if depth == 0 {
		if s.mode == Strong {
			return s.heuristic(p), 0
		}
		return 0, 0
	}

	forced := p.ForcedMoves()
	switch bits.OnesCount64(forced) {
	case 0:
		nonLosing := p.NonLosingMoves()
		if nonLosing == 0 {
			// Every legal move plays directly under one of the opponent's
			// winning squares: whichever is chosen, the opponent wins next
			// turn.
			mv := legal & -legal
			return s.forcedLossScore(depth), mv
		}
		return s.searchChildren(p, nonLosing, depth, alpha, beta)
	case 1:
		child := p.Play(forced)
		score, _ := s.negamax(child, depth-1, -beta, -alpha)
		return -score, forced
	default:
		// Two or more squares threatened: the side to move cannot block
		// both and loses this turn, one ply sooner than a proven mate.
		mv := forced & -forced
		return s.forcedLossScore(depth), mv
	}
}

func (s *searcher) searchChildren(p position.Position, legal uint64, depth int, alpha, beta int) (int, uint64) {
	max := math.MinInt32
	var best uint64

	for _, col := range searchOrder {
		mv := p.ColumnMove(legal, col)
		if mv == 0 {
			continue
		}

		child := p.Play(mv)
		score, _ := s.negamax(child, depth-1, -beta, -alpha)
		score = -score

		if score > max {
			max = score
			best = mv
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return max, best
}
