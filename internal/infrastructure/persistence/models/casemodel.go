package models

import "gorm.io/datatypes"

type CaseModel struct {
	ID            uint   `gorm:"primaryKey"`
	Number        uint64 `gorm:"uniqueIndex;not null"`
	CustomerID    string `gorm:"size:64"`
	CustomerName  string `gorm:"size:200;not null;index"`
	CustomerEmail string `gorm:"size:200"`
	CustomerPhone string `gorm:"size:50"`
	IssueType     string `gorm:"size:20;not null;index"`
	Priority      string `gorm:"size:20;not null;index"`
	Description   string `gorm:"type:text"`
	Status        string `gorm:"size:20;not null;index"`
	Archived      bool   `gorm:"not null;default:false;index"`
	Agent         string `gorm:"size:200;index"`
	Attachments   datatypes.JSON
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints or associations. Timeline rows are
	// managed explicitly by the repository.
}

func (CaseModel) TableName() string {
	return "cases"
}

// LogEntryModel is one timeline row. Insertion order (the auto-increment
// primary key) is the timeline order; rows are never updated.
type LogEntryModel struct {
	ID      uint   `gorm:"primaryKey"`
	CaseID  uint   `gorm:"not null;index"`
	Author  string `gorm:"size:200;not null"`
	Message string `gorm:"type:text"`
	Files   datatypes.JSON
	At      int64 `gorm:"not null;index"`
}

func (LogEntryModel) TableName() string {
	return "case_logs"
}

// SequenceModel backs the atomic case-number allocator. One row per
// counter name; the value only ever increases.
type SequenceModel struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value uint64 `gorm:"not null"`
}

func (SequenceModel) TableName() string {
	return "sequences"
}
