package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("blob server unavailable")
	ErrTransport           = errors.New("transport error")
	ErrForeignURL          = errors.New("url does not belong to the configured blob server")
)
