package observability

// --- Common ---

const (
	AttrError             = "error"
	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
)

// --- Recovery ---

const (
	// AttrInputSize is the byte length of the text being processed.
	AttrInputSize = "input.size"

	// AttrInputPreview is a truncated copy of the input, for debug logs only.
	AttrInputPreview = "input.preview"

	// AttrChain is the transform chain name.
	AttrChain = "recovery.chain"

	// AttrChainAttempts is how many chains were tried before returning.
	AttrChainAttempts = "recovery.attempts"

	// AttrClassification is the FormatClassifier label.
	AttrClassification = "classification"

	// AttrFixSource says whether a fix came from local recovery or the AI.
	AttrFixSource = "fix.source"
)

// --- Repair providers ---

const (
	AttrRepairProvider  = "repair.provider"
	AttrRepairModel     = "repair.model"
	AttrRepairEndpoint  = "repair.endpoint"
	AttrRepairRequestID = "repair.request.id"
	AttrRepairTokens    = "repair.usage.total_tokens"
	AttrRepairFinish    = "repair.finish_reason"

	AttrHTTPMethod           = "http.method"
	AttrHTTPURL              = "http.url"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"
	AttrHTTPDuration         = "http.request.duration"
)

// --- Span names ---

const (
	SpanRecover = "recovery.recover"
	SpanRepair  = "repair.request"
	SpanFix     = "alchemist.fix"
)

// --- Event names ---

const (
	EventCandidateFailed  = "recovery.candidate.failed"
	EventHTTPPrepared     = "http.request.prepared"
	EventHTTPError        = "http.request.error"
	EventHTTPResponse     = "http.response.received"
	EventRepairValidation = "repair.output.validated"
)

// --- Metric names ---

const (
	MetricRecoveryOutcome = "jsonalchemist.recovery.outcome"
	MetricRepairCount     = "jsonalchemist.repair.count"
	MetricRepairDuration  = "jsonalchemist.repair.duration"
)
