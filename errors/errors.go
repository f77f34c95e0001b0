package errors

import "fmt"

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrStorageUnavailable  = fmt.Errorf("storage unavailable")
	ErrDuplicateTicket     = fmt.Errorf("an open ticket already exists for this requester")
	ErrNotATicketChannel   = fmt.Errorf("this is not a ticket channel")
	ErrResourceNotFound    = fmt.Errorf("resource not found")
	ErrMissingPermission   = fmt.Errorf("missing permission")
	ErrInvalidCommand      = fmt.Errorf("invalid command")
	ErrDirectMessageFailed = fmt.Errorf("could not send direct message")
	ErrNotInGuild          = fmt.Errorf("command must be used inside a server")
	ErrUnknownLocation     = fmt.Errorf("unknown time zone")
)
