// Package quiz implements the quiz session lifecycle: created, zero or more
// hints, answered.
//
// Sessions live in a bounded in-memory LRU store keyed by a random UUID. State
// is process-local and intentionally not persisted; a restart forgets all open
// quizzes. Mutation (hints, answering) is serialized per session, and answering
// is idempotent — the first call computes the answer payload and every later
// call returns the identical value.
package quiz
