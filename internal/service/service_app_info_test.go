package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "2026-01-01", "abc"), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_ReturnsConfiguredValues(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "2026-10-01", "deadbeef"), logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, models.VersionResponse{Version: "3.1.4", Date: "2026-10-01", Commit: "deadbeef"}, got)
}

func TestGetBuildInfo_Stable(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, "1.0.0", svc.GetBuildInfo(context.Background()).Version)
	}
}
