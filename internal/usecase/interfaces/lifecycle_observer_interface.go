package interfaces

import "jobledger/internal/domain/entities"

// ILifecycleObserver receives lifecycle events for instrumentation.
type ILifecycleObserver interface {
	TransitionRecorded(to entities.JobStatus)
	IdentifierConflict(kind string)
	OperationFailed(operation, kind string)
}
