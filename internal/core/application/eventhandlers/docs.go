// Package eventhandlers translates foreign service events into local
// commands. One handler per inbound topic; each returns nil to
// acknowledge, a Terminal-wrapped error to log and drop, or any other
// error to requeue.
package eventhandlers
