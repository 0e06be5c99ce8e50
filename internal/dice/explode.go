package dice

import "errors"

// DefaultMaxDepth is the explosion-chain ceiling used by ProbabilityAtLeast.
// The chain shrinks the remaining target by the full face count at every
// step, so realistic queries never come close to it.
const DefaultMaxDepth = 1000

// ErrInvalidFaceCount is returned when constructing a die with fewer than
// two faces. A one-faced die explodes on every roll and has no finite
// expected value.
var ErrInvalidFaceCount = errors.New("face count must be at least 2")

// Die represents a single exploding die with faces 1..n. Rolling the
// maximum face triggers a re-roll whose result is added to the running
// total, repeated without bound.
//
// A Die memoizes probability results per instance. It is not safe for
// concurrent use.
type Die struct {
	faces int
	memo  map[int]memoEntry
}

// memoEntry records a computed probability along with whether the value
// was tainted by hitting the depth ceiling, so repeat queries report
// truncation the same way the first computation did.
type memoEntry struct {
	prob      float64
	truncated bool
}

// New creates an exploding die with the given number of faces.
func New(faces int) (*Die, error) {
	if faces < 2 {
		return nil, ErrInvalidFaceCount
	}

	return &Die{
		faces: faces,
		memo:  make(map[int]memoEntry),
	}, nil
}

// Faces returns the number of faces on the die.
func (d *Die) Faces() int {
	return d.faces
}

// ProbabilityAtLeast returns P(total >= target) for the exploding roll
// total, using the default depth ceiling.
func (d *Die) ProbabilityAtLeast(target int) float64 {
	prob, _ := d.ProbabilityAtLeastDepth(target, DefaultMaxDepth)
	return prob
}

// ProbabilityAtLeastDepth returns P(total >= target) with an explicit
// ceiling on the number of explosion steps considered. If the ceiling is
// reached before a base case, the remaining tail is counted as zero and
// the second return value is true: the result is a conservative
// under-count, not an exact probability.
//
// The recurrence is
//
//	P(t) = max(0, n-t)/n + (1/n) * P(t-n)    for t > 1
//	P(t) = 1                                 for t <= 1
//
// where the first term counts the faces t..n-1 that meet the target
// outright (face n always explodes) and the second follows the explosion
// into a fresh roll needing t-n more. It is evaluated iteratively: walk
// the chain t, t-n, t-2n, ... down to a base case, a memoized value, or
// the depth ceiling, then fill memo entries back up.
func (d *Die) ProbabilityAtLeastDepth(target, maxDepth int) (float64, bool) {
	if target <= 1 {
		return 1.0, false
	}

	if entry, ok := d.memo[target]; ok {
		return entry.prob, entry.truncated
	}

	// Descend the explosion chain. Each pending target needs its tail
	// resolved before its own probability can be computed.
	var (
		chain     []int
		tail      float64
		truncated bool
	)

	t := target
	depth := maxDepth
	for {
		if t <= 1 {
			tail = 1.0
			break
		}

		if entry, ok := d.memo[t]; ok {
			tail = entry.prob
			truncated = entry.truncated
			break
		}

		if depth <= 0 {
			// Depth exhausted: count the unresolved tail as zero.
			tail = 0.0
			truncated = true
			break
		}

		chain = append(chain, t)
		t -= d.faces
		depth--
	}

	// Fill back up, memoizing every target on the chain.
	for i := len(chain) - 1; i >= 0; i-- {
		t = chain[i]

		var direct int
		if t <= d.faces {
			// Faces t, t+1, ..., n-1 succeed without exploding.
			direct = d.faces - t
		}

		tail = (float64(direct) + tail) / float64(d.faces)
		d.memo[t] = memoEntry{prob: tail, truncated: truncated}
	}

	return tail, truncated
}

// ExpectedValue returns the expected total of the exploding roll,
// E = n(n+1) / (2(n-1)), the closed-form solution of
// E = (1/n)*sum(1..n-1) + (1/n)*(n + E).
func (d *Die) ExpectedValue() float64 {
	return float64(d.faces*(d.faces+1)) / float64(2*(d.faces-1))
}

// ProbabilityMaxAtLeast returns P(max(A, B) >= target) for two
// independent exploding dice. By independence,
// P(max < t) = P(A < t) * P(B < t), so the complement is
// 1 - (1-pA)(1-pB).
func ProbabilityMaxAtLeast(a, b *Die, target int) float64 {
	pa := a.ProbabilityAtLeast(target)
	pb := b.ProbabilityAtLeast(target)

	return 1 - (1-pa)*(1-pb)
}

// ProbabilityMaxAtLeastDepth is ProbabilityMaxAtLeast with an explicit
// depth ceiling. The truncation flag is true if either die's query was
// truncated.
func ProbabilityMaxAtLeastDepth(a, b *Die, target, maxDepth int) (float64, bool) {
	pa, truncA := a.ProbabilityAtLeastDepth(target, maxDepth)
	pb, truncB := b.ProbabilityAtLeastDepth(target, maxDepth)

	return 1 - (1-pa)*(1-pb), truncA || truncB
}
