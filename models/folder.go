package models

import "time"

// FolderRecord is the persisted metadata of one folder.
//
// ParentID links folders into a forest rooted at RootFolderID. Path is
// derived from the parent chain at creation time and is advisory only:
// traversal always follows ParentID.
type FolderRecord struct {
	ID       string `json:"id"`
	OwnerID  string `json:"owner_id"`
	ParentID string `json:"parent_id"`
	Name     string `json:"name"`
	Path     string `json:"path"`

	SchemaVersion int `json:"schema_version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FolderFilter selects folder records by equality on owner and parent.
// Empty ParentID matches every parent.
type FolderFilter struct {
	OwnerID  string
	ParentID string
}

// FolderContents is the listing of a single folder level.
type FolderContents struct {
	Folder  *FolderRecord  `json:"folder,omitempty"`
	Folders []FolderRecord `json:"folders"`
	Files   []FileRecord   `json:"files"`
}
