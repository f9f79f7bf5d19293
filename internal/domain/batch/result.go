package batch

// ItemStatus is the processing outcome of a single batch item.
type ItemStatus string

// Batch item status values.
const (
	StatusOK    ItemStatus = "ok"
	StatusError ItemStatus = "error"
)

// UnknownID identifies a failed item that has neither a caller-supplied nor an engine-assigned id.
const UnknownID = "unknown"

// Cause describes why the engine rejected an item.
type Cause struct {
	Type   string
	Reason string
}

// Result is the outcome of one item in a bulk write.
type Result struct {
	id     string
	status ItemStatus
	cause  Cause
}

// NewOK creates a successful batch result.
func NewOK(id string) Result { return Result{id: id, status: StatusOK} }

// NewFailure creates a failed batch result. An empty id becomes UnknownID.
func NewFailure(id string, cause Cause) Result {
	if id == "" {
		id = UnknownID
	}
	return Result{id: id, status: StatusError, cause: cause}
}

// ID returns the item identifier.
func (r Result) ID() string { return r.id }

// Status returns the processing outcome.
func (r Result) Status() ItemStatus { return r.status }

// Failed reports whether the item was rejected.
func (r Result) Failed() bool { return r.status == StatusError }

// Cause returns the rejection cause; zero for successful items.
func (r Result) Cause() Cause { return r.cause }

// Summary is the aggregated outcome of a bulk write.
type Summary struct {
	Total      int
	Successful int
	Failed     int
	Failures   []Result
}

// Summarize counts outcomes and keeps the failures in input order.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Failed() {
			s.Failed++
			s.Failures = append(s.Failures, r)
			continue
		}
		s.Successful++
	}
	return s
}
