// Mocks for internal/adapter/interfaces.go, kept by hand in mockgen layout.
// Regenerate with `go generate ./internal/adapter`.

package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/MKhiriev/go-safe-share/models"
	gomock "go.uber.org/mock/gomock"
)

// MockBlobServerAdapter is a mock of BlobServerAdapter interface.
type MockBlobServerAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockBlobServerAdapterMockRecorder
	isgomock struct{}
}

// MockBlobServerAdapterMockRecorder is the mock recorder for MockBlobServerAdapter.
type MockBlobServerAdapterMockRecorder struct {
	mock *MockBlobServerAdapter
}

// NewMockBlobServerAdapter creates a new mock instance.
func NewMockBlobServerAdapter(ctrl *gomock.Controller) *MockBlobServerAdapter {
	mock := &MockBlobServerAdapter{ctrl: ctrl}
	mock.recorder = &MockBlobServerAdapterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlobServerAdapter) EXPECT() *MockBlobServerAdapterMockRecorder {
	return m.recorder
}

// DeleteBlob mocks base method.
func (m *MockBlobServerAdapter) DeleteBlob(ctx context.Context, url string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteBlob", ctx, url)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteBlob indicates an expected call of DeleteBlob.
func (mr *MockBlobServerAdapterMockRecorder) DeleteBlob(ctx, url any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteBlob", reflect.TypeOf((*MockBlobServerAdapter)(nil).DeleteBlob), ctx, url)
}

// GetBlob mocks base method.
func (m *MockBlobServerAdapter) GetBlob(ctx context.Context, url string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlob", ctx, url)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlob indicates an expected call of GetBlob.
func (mr *MockBlobServerAdapterMockRecorder) GetBlob(ctx, url any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlob", reflect.TypeOf((*MockBlobServerAdapter)(nil).GetBlob), ctx, url)
}

// PutBlob mocks base method.
func (m *MockBlobServerAdapter) PutBlob(ctx context.Context, ownerID string, data []byte) (models.BlobPutResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PutBlob", ctx, ownerID, data)
	ret0, _ := ret[0].(models.BlobPutResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PutBlob indicates an expected call of PutBlob.
func (mr *MockBlobServerAdapterMockRecorder) PutBlob(ctx, ownerID, data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PutBlob", reflect.TypeOf((*MockBlobServerAdapter)(nil).PutBlob), ctx, ownerID, data)
}

// SetToken mocks base method.
func (m *MockBlobServerAdapter) SetToken(token string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetToken", token)
}

// SetToken indicates an expected call of SetToken.
func (mr *MockBlobServerAdapterMockRecorder) SetToken(token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetToken", reflect.TypeOf((*MockBlobServerAdapter)(nil).SetToken), token)
}

// Token mocks base method.
func (m *MockBlobServerAdapter) Token() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Token")
	ret0, _ := ret[0].(string)
	return ret0
}

// Token indicates an expected call of Token.
func (mr *MockBlobServerAdapterMockRecorder) Token() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Token", reflect.TypeOf((*MockBlobServerAdapter)(nil).Token))
}

// Version mocks base method.
func (m *MockBlobServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Version", ctx)
	ret0, _ := ret[0].(models.VersionResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Version indicates an expected call of Version.
func (mr *MockBlobServerAdapterMockRecorder) Version(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Version", reflect.TypeOf((*MockBlobServerAdapter)(nil).Version), ctx)
}
