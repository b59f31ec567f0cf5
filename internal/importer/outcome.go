package importer

// ErrorKind classifies a task failure by the pipeline stage that produced it.
type ErrorKind string

const (
	// KindNetwork covers fetch failures: timeouts, connection errors,
	// non-success HTTP statuses.
	KindNetwork ErrorKind = "network"

	// KindInvalidContent covers payloads that downloaded fine but are
	// not a decodable image.
	KindInvalidContent ErrorKind = "invalid_content"

	// KindStorage covers destination bucket write failures.
	KindStorage ErrorKind = "storage"
)

// Outcome is the terminal result of one task. Err == nil means the upload
// succeeded and Key holds the destination key; otherwise Kind and Err
// describe the failure.
type Outcome struct {
	Index int
	URL   string
	Key   string
	Bytes int64
	Kind  ErrorKind
	Err   error
}

// Failed reports whether the task failed.
func (o Outcome) Failed() bool { return o.Err != nil }
