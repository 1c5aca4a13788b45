package http

import "errors"

var errUserIDRequired = errors.New("user_id is required")
