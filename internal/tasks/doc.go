// Package tasks implements the background task lifecycle shared by the polling and SSE demos.
//
// # Model
//
// A [Task] is a unit of simulated asynchronous work: a sequential id, a
// status that transitions Running → Completed exactly once, a randomized
// duration fixed at creation, and a creation timestamp.
//
// # Registry
//
// The [Registry] owns all tasks for the lifetime of the process:
//
//  1. [Registry.Create] : Atomic id allocation + insertion under one mutex
//  2. [Registry.Get] : Read-only lookup, absence signalled by a bool
//  3. [Registry.Complete] : Idempotent Running → Completed transition
//  4. [Registry.Done] : A channel closed on completion, for push delivery
//
// Only a task's own runner ever writes its status, so readers observe the
// transition with no stale window once the runner's wait elapses.
//
// # Scheduler
//
// The [Scheduler] spawns one runner goroutine per task. Runners compute
// the remaining wait from the creation timestamp (never the full duration
// again), complete the task, and exit. All runners share a cancellation
// context and a WaitGroup so [Scheduler.Shutdown] can drain them; there
// are no fire-and-forget goroutines.
//
// # Delivery
//
// The package does not know about HTTP. The polling demo reads the
// registry statelessly on each poll; the SSE demo selects on
// [Registry.Done] against the client's request context.
package tasks
