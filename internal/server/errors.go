// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoBlobHandler   = errors.New("no blob http handler to serve")
	errNoListenAddress = errors.New("blob server listen address is empty")
)
