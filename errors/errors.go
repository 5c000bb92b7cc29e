package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrNameTaken          = fmt.Errorf("name already taken")
	ErrNotPresent         = fmt.Errorf("no presence record for this name")
	ErrInvalidLimit       = fmt.Errorf("limit must be a positive integer")
	ErrInvalidMessageType = fmt.Errorf("unsupported message type")
	ErrEmptyField         = fmt.Errorf("required field is empty")
)
