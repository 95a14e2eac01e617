// Package sim runs a fixed list of systems once per frame over a store of
// singleton resources.
package sim

// System is one step of the frame pipeline. Systems may declare Singleton
// fields, which the Scheduler initializes on Register, and keep any private
// state they need between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
