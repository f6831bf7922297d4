package engine

// Terminal is the transport-facing contract of one session. Implementations
// exist for the local readline console and for telnet connections; tests use
// a scripted fake.
//
// All calls for one session are made from that session's goroutine, so a
// second Ask can never start before the previous one has resolved.
type Terminal interface {
	// WriteLine emits one line of output to the session.
	WriteLine(s string)

	// Ask writes prompt, optionally pre-loads the input line with an
	// editable prefill (interactive terminals only; other transports
	// ignore it), and blocks until one line of input arrives. The
	// returned line is not yet trimmed; the engine trims it.
	Ask(prompt, prefill string) (string, error)

	// Prompt signals that the session is ready for the next command
	// line. The engine emits exactly one Prompt per dispatched command.
	Prompt()

	// Close terminates the session's input source.
	Close() error
}
