// Package core classifies open tabs into normal, inactive and recently closed
// buckets. It never closes a tab; it only assigns and persists a label per
// tab id.
//
// Aging
//
// Recency is measured against calendar noon of the evaluation day, so every
// evaluation within the same day sees the same thresholds:
//
//	last used after noon-4d            -> active window
//	noon-30d <= last used <= noon-4d   -> aging window   (target: inactive)
//	last used before noon-30d          -> stale window   (target: recently closed)
//
// A zero timestamp means unknown and is always treated as active.
//
// Two-phase demotion
//
// A demotion is first recorded as a pending transition and only committed by
// a later cold-start evaluation (the first one after a process start) that
// finds the tab still outside the active window:
//
//	same-session pass: normal           -> normal + pending
//	cold-start pass:   normal + pending -> inactive | recentlyClosed
//
// While a pending transition exists, same-session passes leave the record
// untouched. The selected tab and tabs back in the active window always
// resolve to normal, and their pending transition is dropped.
//
// Evaluate and CurrentBuckets are pure; persistence lives in
// internal/adapter/storage.
package core
