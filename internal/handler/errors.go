package handler

import "errors"

var (
	errNoListenAddress = errors.New("blob server listen address is not configured")
	errNoServices      = errors.New("blob server services are not initialized")
)
