package resource

// Direction tags a transfer as a retrieval or an upload.
type Direction string

// Transfer directions.
const (
	DirectionGet Direction = "GET"
	DirectionPut Direction = "PUT"
)

// TransferListener observes the lifecycle of transfers driven by an Accessor.
// Listeners only read the values they are handed; they must not block for
// long, since they run on the transferring goroutine.
//
//go:generate mockgen -destination=./mocks/resource.go . TransferListener,CandidateSource
type TransferListener interface {
	// TransferInitiated fires before any bytes move.
	TransferInitiated(url string, direction Direction)
	// TransferProgress fires after each streamed chunk. total is
	// TotalUnknown when the content length is not known.
	TransferProgress(transferred, total int64)
	// TransferError fires when a transfer fails, before the error is
	// returned to the caller.
	TransferError(url string, direction Direction, err error)
}
