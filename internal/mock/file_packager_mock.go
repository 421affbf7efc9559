// Mocks for internal/packager/interfaces.go, kept by hand in mockgen layout.
// Regenerate with `go generate ./internal/packager`.

package mock

import (
	reflect "reflect"

	models "github.com/MKhiriev/go-safe-share/models"
	gomock "go.uber.org/mock/gomock"
)

// MockFilePackager is a mock of FilePackager interface.
type MockFilePackager struct {
	ctrl     *gomock.Controller
	recorder *MockFilePackagerMockRecorder
	isgomock struct{}
}

// MockFilePackagerMockRecorder is the mock recorder for MockFilePackager.
type MockFilePackagerMockRecorder struct {
	mock *MockFilePackager
}

// NewMockFilePackager creates a new mock instance.
func NewMockFilePackager(ctrl *gomock.Controller) *MockFilePackager {
	mock := &MockFilePackager{ctrl: ctrl}
	mock.recorder = &MockFilePackagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFilePackager) EXPECT() *MockFilePackagerMockRecorder {
	return m.recorder
}

// Open mocks base method.
func (m *MockFilePackager) Open(bundle models.EncryptedBundle) (models.OpenedFile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Open", bundle)
	ret0, _ := ret[0].(models.OpenedFile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Open indicates an expected call of Open.
func (mr *MockFilePackagerMockRecorder) Open(bundle any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockFilePackager)(nil).Open), bundle)
}

// Seal mocks base method.
func (m *MockFilePackager) Seal(plaintext []byte, fileName string, mimeType string) (models.EncryptedBundle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Seal", plaintext, fileName, mimeType)
	ret0, _ := ret[0].(models.EncryptedBundle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Seal indicates an expected call of Seal.
func (mr *MockFilePackagerMockRecorder) Seal(plaintext, fileName, mimeType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Seal", reflect.TypeOf((*MockFilePackager)(nil).Seal), plaintext, fileName, mimeType)
}
