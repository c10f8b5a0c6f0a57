// Package responsewriter wraps http.ResponseWriter to record the status code
// and bytes written, for logging and metrics middleware.
package responsewriter

import "net/http"

// Recorder wraps an http.ResponseWriter and records response details.
type Recorder struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

// Wrap returns a Recorder around w.
func Wrap(w http.ResponseWriter) *Recorder {
	return &Recorder{ResponseWriter: w}
}

// WriteHeader records the status code before delegating.
func (r *Recorder) WriteHeader(status int) {
	if !r.wrote {
		r.status = status
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(status)
}

// Write records the byte count before delegating.
// A write without an explicit WriteHeader implies 200.
func (r *Recorder) Write(b []byte) (int, error) {
	if !r.wrote {
		r.status = http.StatusOK
		r.wrote = true
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// StatusCode returns the recorded status code, or 200 if none was written.
func (r *Recorder) StatusCode() int {
	if !r.wrote {
		return http.StatusOK
	}
	return r.status
}

// BytesWritten returns the number of body bytes written.
func (r *Recorder) BytesWritten() int { return r.bytes }
