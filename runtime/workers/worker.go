//go:generate go run go.uber.org/mock/mockgen -source=worker.go -destination=../../mocks/mock_worker.go -package=mocks
package workers

import (
	"context"
	"reflect"
)

// Worker doesn't protect itself.
// Can be silly, focused. The supervisor owns recovery and restarts.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision purposes, avoiding the need for
// manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
