// Package workers runs the background jobs of the sync daemon.
//
// A Worker is started with Run and stopped with Stop. Workers groups
// several of them so that a connection's schedule can be started and torn
// down as a unit.
package workers

// Worker is a background job.
//
// Run must not block; implementations spawn their own goroutine. Stop
// cancels the job and blocks until its goroutine has exited. Both are safe
// to call more than once.
type Worker interface {
	Run()
	Stop()
}
