package models

// LifecycleVisitor handles every lifecycle event kind the radio stack can
// deliver. A new event variant forces every visitor to grow a method instead
// of silently falling into a default branch.
type LifecycleVisitor interface {
	VisitBoot() error
	VisitConnectionOpened(ConnectionHandle) error
	VisitConnectionClosed() error
	VisitOther(code uint32) error
}

// LifecycleEvent is a tagged variant over the radio stack's lifecycle
// notifications, dispatched through a LifecycleVisitor.
type LifecycleEvent interface {
	Apply(LifecycleVisitor) error
}

// BootEvent is delivered once the radio stack has finished booting.
type BootEvent struct{}

func (BootEvent) Apply(v LifecycleVisitor) error { return v.VisitBoot() }

// ConnectionOpenedEvent is delivered when a peer attaches.
type ConnectionOpenedEvent struct {
	Handle ConnectionHandle
}

func (e ConnectionOpenedEvent) Apply(v LifecycleVisitor) error {
	return v.VisitConnectionOpened(e.Handle)
}

// ConnectionClosedEvent is delivered when the attached peer detaches.
type ConnectionClosedEvent struct{}

func (ConnectionClosedEvent) Apply(v LifecycleVisitor) error {
	return v.VisitConnectionClosed()
}

// OtherEvent carries any vendor event the core does not act on.
type OtherEvent struct {
	Code uint32
}

func (e OtherEvent) Apply(v LifecycleVisitor) error { return v.VisitOther(e.Code) }
