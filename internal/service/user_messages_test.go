// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-safe-share/internal/app"
	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/crypto"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"tampering", fmt.Errorf("open: %w", crypto.ErrAuthenticationFailure), app.MsgTamperingDetected},
		{"bad key", crypto.ErrInvalidKeyMaterial, app.MsgInvalidKeyMaterial},
		{"crypto", crypto.ErrCryptoFailure, app.MsgEncryptionFailed},
		{"missing record", store.ErrRecordNotFound, app.MsgFileNotFound},
		{"missing blob", blob.ErrBlobNotFound, app.MsgFileNotFound},
		{"network", blob.ErrBlobUnavailable, app.MsgNetworkError},
		{"folder name", ErrInvalidFolderName, app.MsgInvalidFolderName},
		{"folder not empty", ErrFolderNotEmpty, app.MsgFolderNotEmpty},
		{"cycle", ErrFolderCycle, app.MsgFolderCycle},
		{"destination", ErrDestinationExists, app.MsgDestinationExists},
		{"duplicate", store.ErrRecordAlreadyExists, app.MsgAlreadyExists},
		{"unknown", errors.New("boom"), app.MsgUnexpectedError},
		{
			"abandoned wins over cause",
			fmt.Errorf("%w: upload: %w", ErrPartialUploadAbandoned, blob.ErrBlobUnavailable),
			app.MsgUploadAbandoned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessage_TamperingDistinctFromNetwork(t *testing.T) {
	assert.NotEqual(t, UserMessage(crypto.ErrAuthenticationFailure), UserMessage(blob.ErrBlobUnavailable))
	assert.NotEqual(t, UserMessage(crypto.ErrAuthenticationFailure), UserMessage(crypto.ErrCryptoFailure))
}
