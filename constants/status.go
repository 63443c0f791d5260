package constants

// ParseStatus classifies the outcome of one parse invocation.
type ParseStatus string

// Stable values (stored verbatim in the parsed_data audit blob).
const (
	ParseStatusFull        ParseStatus = "full"        // reserved for a stricter-validation mode; never produced today
	ParseStatusPartial     ParseStatus = "partial"     // text acquired; fields are best-effort and need human review
	ParseStatusFailed      ParseStatus = "failed"      // acquisition or extraction error, message carries the cause
	ParseStatusUnsupported ParseStatus = "unsupported" // extension not handled by any backend
)

// JobStatus is the canonical status for rows in parse_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusSucceeded JobStatus = "SUCCEEDED" // parse produced a storable result
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure before a result existed
)

// JobStatuses holds the allowed values for the status field in DB rows.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusSucceeded),
	string(JobStatusFailed),
}

// DocKind selects which field set a document is parsed against.
type DocKind string

const (
	KindContract DocKind = "CONTRACT"
	KindInvoice  DocKind = "INVOICE"
)

// DocKinds holds the allowed values for the kind fields in DB rows.
var DocKinds = []string{string(KindContract), string(KindInvoice)}
