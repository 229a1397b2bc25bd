// Package shell turns typed lines into filesystem operations and keeps the
// state of one terminal session.
//
// The Interpreter is stateless: it maps (Env, line) to a Result and mutates
// only the FileSystem it is handed. The Session owns everything else: the
// history and its browsing cursor, the transcript, the pending input buffer
// and tab completion. Persistence is a capability (Persister) passed into
// the Session; every change is written through and a failed write is logged,
// never rolled back.
//
// A Session is driven by one UI surface at a time and is not safe for
// concurrent use.
package shell
