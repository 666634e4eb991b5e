package outbound

// TaskDispatcher abstracts the worker pool so services do not depend on the
// concrete pool implementation.
type TaskDispatcher interface {
	Submit(task func()) error
}
