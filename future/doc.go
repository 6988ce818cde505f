// Package future provides a single settle-once result type used wherever a value may be
// available right away or only after asynchronous work.
//
// Callers never need to inspect what produced a future: Resolved, Go and FromChan all
// yield the same *Future[T], and Await is the only place where the value is read.
package future
