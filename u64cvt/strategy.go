package u64cvt

// Select chooses the code shape used to pick between the two candidate
// results of a conversion: a conditional branch, or branch-free selection
// through mask arithmetic. The choice never affects the result, only
// performance; the right answer depends on call-site properties (input
// distribution, call frequency) that only the caller knows, so no hidden
// heuristic is applied.
type Select uint8

const (
	// SelectBranchy uses a conditional branch on the 2^63 boundary test.
	// Preferred when the distribution of inputs across that boundary is
	// skewed and thus predictable. This is the default.
	SelectBranchy Select = iota

	// SelectBranchless computes both candidates unconditionally and picks
	// one with mask arithmetic: strictly more work per call, but no
	// control-flow divergence. Preferred when the input side of the 2^63
	// boundary is unpredictable (adversarial or uniformly random data).
	SelectBranchless
)

func (s Select) String() string {
	switch s {
	case SelectBranchy:
		return "branchy"
	case SelectBranchless:
		return "branchless"
	default:
		return "select(invalid)"
	}
}

// ConstSource chooses where a conversion obtains its power-of-two bias
// constants: synthesized into a register as an immediate, or loaded from a
// read-only table in memory. The two differ only in latency and data-cache
// pressure, never in the result.
type ConstSource uint8

const (
	// ConstRegister synthesizes the bias constants as immediates, avoiding
	// any data-memory access. This is the default.
	ConstRegister ConstSource = iota

	// ConstMemory fetches the bias constants from a precomputed read-only
	// location. Shorter code, one extra load; preferred when the table is
	// cache-hot.
	ConstMemory
)

func (c ConstSource) String() string {
	switch c {
	case ConstRegister:
		return "register"
	case ConstMemory:
		return "memory"
	default:
		return "constsource(invalid)"
	}
}
