// Package actor runs upgrade actors: leaf units of work that read the facts
// they consume, make best-effort edits to the host and add the facts they
// produce.
//
// Scheduling and phase ordering belong to the upgrade engine. Run only walks
// the actors it is given, in order, and keeps going when one of them fails.
package actor
