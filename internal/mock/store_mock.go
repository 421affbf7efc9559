// Mocks for internal/store/interfaces.go, kept by hand in mockgen layout.
// Regenerate with `go generate ./internal/store`.

package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/MKhiriev/go-safe-share/models"
	gomock "go.uber.org/mock/gomock"
)

// MockFileRepository is a mock of FileRepository interface.
type MockFileRepository struct {
	ctrl     *gomock.Controller
	recorder *MockFileRepositoryMockRecorder
	isgomock struct{}
}

// MockFileRepositoryMockRecorder is the mock recorder for MockFileRepository.
type MockFileRepositoryMockRecorder struct {
	mock *MockFileRepository
}

// NewMockFileRepository creates a new mock instance.
func NewMockFileRepository(ctrl *gomock.Controller) *MockFileRepository {
	mock := &MockFileRepository{ctrl: ctrl}
	mock.recorder = &MockFileRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFileRepository) EXPECT() *MockFileRepositoryMockRecorder {
	return m.recorder
}

// CreateFile mocks base method.
func (m *MockFileRepository) CreateFile(ctx context.Context, record models.FileRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateFile", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateFile indicates an expected call of CreateFile.
func (mr *MockFileRepositoryMockRecorder) CreateFile(ctx, record any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateFile", reflect.TypeOf((*MockFileRepository)(nil).CreateFile), ctx, record)
}

// DeleteFile mocks base method.
func (m *MockFileRepository) DeleteFile(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteFile", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteFile indicates an expected call of DeleteFile.
func (mr *MockFileRepositoryMockRecorder) DeleteFile(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteFile", reflect.TypeOf((*MockFileRepository)(nil).DeleteFile), ctx, id)
}

// GetFile mocks base method.
func (m *MockFileRepository) GetFile(ctx context.Context, id string) (models.FileRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFile", ctx, id)
	ret0, _ := ret[0].(models.FileRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetFile indicates an expected call of GetFile.
func (mr *MockFileRepositoryMockRecorder) GetFile(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFile", reflect.TypeOf((*MockFileRepository)(nil).GetFile), ctx, id)
}

// QueryFiles mocks base method.
func (m *MockFileRepository) QueryFiles(ctx context.Context, filter models.FileFilter, order models.OrderBy) ([]models.FileRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QueryFiles", ctx, filter, order)
	ret0, _ := ret[0].([]models.FileRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// QueryFiles indicates an expected call of QueryFiles.
func (mr *MockFileRepositoryMockRecorder) QueryFiles(ctx, filter, order any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QueryFiles", reflect.TypeOf((*MockFileRepository)(nil).QueryFiles), ctx, filter, order)
}

// MockFolderRepository is a mock of FolderRepository interface.
type MockFolderRepository struct {
	ctrl     *gomock.Controller
	recorder *MockFolderRepositoryMockRecorder
	isgomock struct{}
}

// MockFolderRepositoryMockRecorder is the mock recorder for MockFolderRepository.
type MockFolderRepositoryMockRecorder struct {
	mock *MockFolderRepository
}

// NewMockFolderRepository creates a new mock instance.
func NewMockFolderRepository(ctrl *gomock.Controller) *MockFolderRepository {
	mock := &MockFolderRepository{ctrl: ctrl}
	mock.recorder = &MockFolderRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFolderRepository) EXPECT() *MockFolderRepositoryMockRecorder {
	return m.recorder
}

// CreateFolder mocks base method.
func (m *MockFolderRepository) CreateFolder(ctx context.Context, record models.FolderRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateFolder", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateFolder indicates an expected call of CreateFolder.
func (mr *MockFolderRepositoryMockRecorder) CreateFolder(ctx, record any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateFolder", reflect.TypeOf((*MockFolderRepository)(nil).CreateFolder), ctx, record)
}

// DeleteFolder mocks base method.
func (m *MockFolderRepository) DeleteFolder(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteFolder", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteFolder indicates an expected call of DeleteFolder.
func (mr *MockFolderRepositoryMockRecorder) DeleteFolder(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteFolder", reflect.TypeOf((*MockFolderRepository)(nil).DeleteFolder), ctx, id)
}

// GetFolder mocks base method.
func (m *MockFolderRepository) GetFolder(ctx context.Context, id string) (models.FolderRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFolder", ctx, id)
	ret0, _ := ret[0].(models.FolderRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetFolder indicates an expected call of GetFolder.
func (mr *MockFolderRepositoryMockRecorder) GetFolder(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFolder", reflect.TypeOf((*MockFolderRepository)(nil).GetFolder), ctx, id)
}

// QueryFolders mocks base method.
func (m *MockFolderRepository) QueryFolders(ctx context.Context, filter models.FolderFilter, order models.OrderBy) ([]models.FolderRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QueryFolders", ctx, filter, order)
	ret0, _ := ret[0].([]models.FolderRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// QueryFolders indicates an expected call of QueryFolders.
func (mr *MockFolderRepositoryMockRecorder) QueryFolders(ctx, filter, order any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QueryFolders", reflect.TypeOf((*MockFolderRepository)(nil).QueryFolders), ctx, filter, order)
}

// UpdateFolder mocks base method.
func (m *MockFolderRepository) UpdateFolder(ctx context.Context, record models.FolderRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFolder", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateFolder indicates an expected call of UpdateFolder.
func (mr *MockFolderRepositoryMockRecorder) UpdateFolder(ctx, record any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFolder", reflect.TypeOf((*MockFolderRepository)(nil).UpdateFolder), ctx, record)
}
