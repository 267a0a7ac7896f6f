// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work itself happens on
// goroutines owned by the worker. Stop blocks until in-flight work finishes.
//
// Example implementation:
//
//	type MyWorker struct{ cron *cron.Cron }
//
//	func (w *MyWorker) Run()  { w.cron.Start() }
//	func (w *MyWorker) Stop() { <-w.cron.Stop().Done() }
type Worker interface {
	Run()
	Stop()
}
