package model

// File stores uploaded file content in the database together with a generated
// storage name, so the applicant's original filename never leaks into URLs or
// object keys. Extension keeps the lowercased original extension (with dot)
// for rebuilding a display filename on download.
type File struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	StorageName string `gorm:"type:text;uniqueIndex" json:"-"`
	Content     []byte `json:"-"`
	Extension   string `json:"extension"`
}
