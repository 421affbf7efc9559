// Mocks for internal/service/interfaces.go, kept by hand in mockgen layout.
// Regenerate with `go generate ./internal/service`.

// Package mock holds gomock doubles for the service, store, blob, adapter
// and packager interfaces, laid out as mockgen's source mode writes them.
//
// The files are kept in sync with their interfaces by hand. Running
// `go generate ./...` regenerates them through the //go:generate directive
// next to each interface and replaces this header.
package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/MKhiriev/go-safe-share/models"
	gomock "go.uber.org/mock/gomock"
)

// MockUploadService is a mock of UploadService interface.
type MockUploadService struct {
	ctrl     *gomock.Controller
	recorder *MockUploadServiceMockRecorder
	isgomock struct{}
}

// MockUploadServiceMockRecorder is the mock recorder for MockUploadService.
type MockUploadServiceMockRecorder struct {
	mock *MockUploadService
}

// NewMockUploadService creates a new mock instance.
func NewMockUploadService(ctrl *gomock.Controller) *MockUploadService {
	mock := &MockUploadService{ctrl: ctrl}
	mock.recorder = &MockUploadServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUploadService) EXPECT() *MockUploadServiceMockRecorder {
	return m.recorder
}

// Upload mocks base method.
func (m *MockUploadService) Upload(ctx context.Context, ownerID string, folderID string, items []models.UploadItem, progress models.ProgressFunc) ([]models.UploadResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upload", ctx, ownerID, folderID, items, progress)
	ret0, _ := ret[0].([]models.UploadResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Upload indicates an expected call of Upload.
func (mr *MockUploadServiceMockRecorder) Upload(ctx, ownerID, folderID, items, progress any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upload", reflect.TypeOf((*MockUploadService)(nil).Upload), ctx, ownerID, folderID, items, progress)
}

// MockDownloadService is a mock of DownloadService interface.
type MockDownloadService struct {
	ctrl     *gomock.Controller
	recorder *MockDownloadServiceMockRecorder
	isgomock struct{}
}

// MockDownloadServiceMockRecorder is the mock recorder for MockDownloadService.
type MockDownloadServiceMockRecorder struct {
	mock *MockDownloadService
}

// NewMockDownloadService creates a new mock instance.
func NewMockDownloadService(ctrl *gomock.Controller) *MockDownloadService {
	mock := &MockDownloadService{ctrl: ctrl}
	mock.recorder = &MockDownloadServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDownloadService) EXPECT() *MockDownloadServiceMockRecorder {
	return m.recorder
}

// Download mocks base method.
func (m *MockDownloadService) Download(ctx context.Context, ownerID string, fileID string) (models.OpenedFile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Download", ctx, ownerID, fileID)
	ret0, _ := ret[0].(models.OpenedFile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Download indicates an expected call of Download.
func (mr *MockDownloadServiceMockRecorder) Download(ctx, ownerID, fileID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Download", reflect.TypeOf((*MockDownloadService)(nil).Download), ctx, ownerID, fileID)
}

// DownloadTo mocks base method.
func (m *MockDownloadService) DownloadTo(ctx context.Context, ownerID string, fileID string, dir string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DownloadTo", ctx, ownerID, fileID, dir)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DownloadTo indicates an expected call of DownloadTo.
func (mr *MockDownloadServiceMockRecorder) DownloadTo(ctx, ownerID, fileID, dir any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DownloadTo", reflect.TypeOf((*MockDownloadService)(nil).DownloadTo), ctx, ownerID, fileID, dir)
}

// MockFolderService is a mock of FolderService interface.
type MockFolderService struct {
	ctrl     *gomock.Controller
	recorder *MockFolderServiceMockRecorder
	isgomock struct{}
}

// MockFolderServiceMockRecorder is the mock recorder for MockFolderService.
type MockFolderServiceMockRecorder struct {
	mock *MockFolderService
}

// NewMockFolderService creates a new mock instance.
func NewMockFolderService(ctrl *gomock.Controller) *MockFolderService {
	mock := &MockFolderService{ctrl: ctrl}
	mock.recorder = &MockFolderServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFolderService) EXPECT() *MockFolderServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockFolderService) Create(ctx context.Context, ownerID string, parentID string, name string) (models.FolderRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, ownerID, parentID, name)
	ret0, _ := ret[0].(models.FolderRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockFolderServiceMockRecorder) Create(ctx, ownerID, parentID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockFolderService)(nil).Create), ctx, ownerID, parentID, name)
}

// Delete mocks base method.
func (m *MockFolderService) Delete(ctx context.Context, ownerID string, folderID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, ownerID, folderID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockFolderServiceMockRecorder) Delete(ctx, ownerID, folderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockFolderService)(nil).Delete), ctx, ownerID, folderID)
}

// List mocks base method.
func (m *MockFolderService) List(ctx context.Context, ownerID string, parentID string) (models.FolderContents, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, ownerID, parentID)
	ret0, _ := ret[0].(models.FolderContents)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockFolderServiceMockRecorder) List(ctx, ownerID, parentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockFolderService)(nil).List), ctx, ownerID, parentID)
}

// Move mocks base method.
func (m *MockFolderService) Move(ctx context.Context, ownerID string, folderID string, newParentID string) (models.FolderRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Move", ctx, ownerID, folderID, newParentID)
	ret0, _ := ret[0].(models.FolderRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Move indicates an expected call of Move.
func (mr *MockFolderServiceMockRecorder) Move(ctx, ownerID, folderID, newParentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Move", reflect.TypeOf((*MockFolderService)(nil).Move), ctx, ownerID, folderID, newParentID)
}

// MockFileService is a mock of FileService interface.
type MockFileService struct {
	ctrl     *gomock.Controller
	recorder *MockFileServiceMockRecorder
	isgomock struct{}
}

// MockFileServiceMockRecorder is the mock recorder for MockFileService.
type MockFileServiceMockRecorder struct {
	mock *MockFileService
}

// NewMockFileService creates a new mock instance.
func NewMockFileService(ctrl *gomock.Controller) *MockFileService {
	mock := &MockFileService{ctrl: ctrl}
	mock.recorder = &MockFileServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFileService) EXPECT() *MockFileServiceMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockFileService) Delete(ctx context.Context, ownerID string, fileID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, ownerID, fileID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockFileServiceMockRecorder) Delete(ctx, ownerID, fileID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockFileService)(nil).Delete), ctx, ownerID, fileID)
}

// Get mocks base method.
func (m *MockFileService) Get(ctx context.Context, ownerID string, fileID string) (models.FileRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, ownerID, fileID)
	ret0, _ := ret[0].(models.FileRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockFileServiceMockRecorder) Get(ctx, ownerID, fileID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockFileService)(nil).Get), ctx, ownerID, fileID)
}

// List mocks base method.
func (m *MockFileService) List(ctx context.Context, ownerID string, folderID string) ([]models.FileRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, ownerID, folderID)
	ret0, _ := ret[0].([]models.FileRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockFileServiceMockRecorder) List(ctx, ownerID, folderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockFileService)(nil).List), ctx, ownerID, folderID)
}

// MockBlobService is a mock of BlobService interface.
type MockBlobService struct {
	ctrl     *gomock.Controller
	recorder *MockBlobServiceMockRecorder
	isgomock struct{}
}

// MockBlobServiceMockRecorder is the mock recorder for MockBlobService.
type MockBlobServiceMockRecorder struct {
	mock *MockBlobService
}

// NewMockBlobService creates a new mock instance.
func NewMockBlobService(ctrl *gomock.Controller) *MockBlobService {
	mock := &MockBlobService{ctrl: ctrl}
	mock.recorder = &MockBlobServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlobService) EXPECT() *MockBlobServiceMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockBlobService) Delete(ctx context.Context, ownerID string, objectID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, ownerID, objectID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockBlobServiceMockRecorder) Delete(ctx, ownerID, objectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockBlobService)(nil).Delete), ctx, ownerID, objectID)
}

// Get mocks base method.
func (m *MockBlobService) Get(ctx context.Context, ownerID string, objectID string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, ownerID, objectID)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockBlobServiceMockRecorder) Get(ctx, ownerID, objectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockBlobService)(nil).Get), ctx, ownerID, objectID)
}

// Put mocks base method.
func (m *MockBlobService) Put(ctx context.Context, ownerID string, data []byte) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", ctx, ownerID, data)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Put indicates an expected call of Put.
func (mr *MockBlobServiceMockRecorder) Put(ctx, ownerID, data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockBlobService)(nil).Put), ctx, ownerID, data)
}

// MockAppInfoService is a mock of AppInfoService interface.
type MockAppInfoService struct {
	ctrl     *gomock.Controller
	recorder *MockAppInfoServiceMockRecorder
	isgomock struct{}
}

// MockAppInfoServiceMockRecorder is the mock recorder for MockAppInfoService.
type MockAppInfoServiceMockRecorder struct {
	mock *MockAppInfoService
}

// NewMockAppInfoService creates a new mock instance.
func NewMockAppInfoService(ctrl *gomock.Controller) *MockAppInfoService {
	mock := &MockAppInfoService{ctrl: ctrl}
	mock.recorder = &MockAppInfoServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAppInfoService) EXPECT() *MockAppInfoServiceMockRecorder {
	return m.recorder
}

// GetBuildInfo mocks base method.
func (m *MockAppInfoService) GetBuildInfo(ctx context.Context) models.VersionResponse {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBuildInfo", ctx)
	ret0, _ := ret[0].(models.VersionResponse)
	return ret0
}

// GetBuildInfo indicates an expected call of GetBuildInfo.
func (mr *MockAppInfoServiceMockRecorder) GetBuildInfo(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBuildInfo", reflect.TypeOf((*MockAppInfoService)(nil).GetBuildInfo), ctx)
}
