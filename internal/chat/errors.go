package chat

import "errors"

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrMissingSession  = errors.New("session id is required")
	ErrUnknownDispatch = errors.New("router produced an unknown dispatch label")
)
