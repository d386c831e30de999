package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID = errors.New("failed to parse UUID")
)

// Error is the wire format for every failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
