// Package hook runs user-provided Tengo scripts on transfer lifecycle events,
// so repository operators can observe or audit transfers without recompiling.
package hook

// Event identifies a transfer lifecycle point a script can attach to.
type Event string

// Supported hook events.
const (
	PreTransfer   Event = "pre-transfer"
	PostTransfer  Event = "post-transfer"
	TransferError Event = "transfer-error"
)

// Hook represents a hook script with its event and content.
type Hook struct {
	Event   Event
	Content string
}

// Context carries transfer information into a script.
type Context struct {
	// URL is the transfer's origin or destination URL.
	URL string
	// Direction is "GET" for downloads and "PUT" for uploads.
	Direction string
	// Transferred is the number of bytes moved so far.
	Transferred int64
	// Total is the expected transfer length, -1 when unknown.
	Total int64
	// Error holds the failure message for transfer-error hooks.
	Error string
	// Vars carries additional caller-supplied variables.
	Vars map[string]interface{}
}

// Manager defines the interface for managing transfer hooks.
type Manager interface {
	// Execute runs the script attached to the event with the given context.
	Execute(event Event, ctx Context) error

	// AddHook attaches a script to an event.
	AddHook(hook Hook) error

	// RemoveHook detaches the script for an event.
	RemoveHook(event Event) error

	// HasHook checks whether a script is attached to the event.
	HasHook(event Event) bool
}
