package tracing

// Span attribute keys for diff computations.
const (
	AttrComputationID = "computation.id"

	AttrDiffMode      = "diff.mode"
	AttrDiffAlgorithm = "diff.algorithm"
	AttrIgnoreCase    = "diff.ignore_case"
	AttrIgnoreSpace   = "diff.ignore_whitespace"

	AttrTokensOld = "diff.tokens.old"
	AttrTokensNew = "diff.tokens.new"
	AttrCells     = "diff.cells"

	AttrCacheHit = "diff.cache.hit"

	AttrAdditions = "diff.additions"
	AttrDeletions = "diff.deletions"
	AttrTotal     = "diff.total"

	AttrErrorMessage = "error.message"
)

// Span names.
const (
	SpanCompute  = "diff.compute"
	SpanTokenize = "diff.tokenize"
	SpanAlign    = "diff.align"
)

// Event names for span events.
const (
	EventCacheHit         = "cache.hit"
	EventAlgorithmChanged = "algorithm.fallback"
	EventCanceled         = "computation.canceled"
)
