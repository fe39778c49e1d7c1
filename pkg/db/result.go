// pkg/db/result.go
package db

// Status is the two-valued outcome of one Executor invocation.
type Status int

const (
	StatusSuccess Status = 0
	StatusFailure Status = -1
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

// Result carries either harvested rows or a failure marker, never both.
type Result struct {
	rows   []Row
	status Status
	err    error
}

// Succeeded builds a success Result. rows may be nil for "no result set".
func Succeeded(rows []Row) Result {
	return Result{rows: rows, status: StatusSuccess}
}

// Failed builds a failure Result with its diagnostic cause.
func Failed(err error) Result {
	return Result{status: StatusFailure, err: err}
}

// Status returns the outcome signal.
func (r Result) Status() Status { return r.status }

// OK reports whether the transaction committed.
func (r Result) OK() bool { return r.status == StatusSuccess }

// Rows returns the harvested rows and true on success. Rows is nil when the
// last statement produced no result set. On failure it returns nil, false.
func (r Result) Rows() ([]Row, bool) {
	if r.status != StatusSuccess {
		return nil, false
	}
	return r.rows, true
}

// First returns the first harvested row, if the invocation succeeded and
// produced at least one.
func (r Result) First() (Row, bool) {
	rows, ok := r.Rows()
	if !ok || len(rows) == 0 {
		return nil, false
	}
	return rows[0], true
}

// Err returns the failure cause for diagnostics. It is nil on success.
func (r Result) Err() error { return r.err }
