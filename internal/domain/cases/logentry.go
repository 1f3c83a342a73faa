package cases

import (
	"fmt"
	"time"
)

// Attachment is a stable reference to a stored file.
type Attachment struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}

// LogEntry is one element of a case timeline. Entries are append-only:
// once written they are never mutated or removed.
type LogEntry struct {
	id      uint
	caseID  uint
	author  string
	message string
	files   []Attachment
	at      time.Time
}

// NewLogEntry builds a timeline entry. The author is always the
// authenticated caller's display name, determined server-side; it is a
// programming error to pass a client-supplied value here.
func NewLogEntry(caseID uint, author, message string, files []Attachment) (*LogEntry, error) {
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	if len(author) == 0 {
		return nil, fmt.Errorf("author is required")
	}
	if len(message) == 0 && len(files) == 0 {
		return nil, fmt.Errorf("log entry must carry a message or files")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	if files == nil {
		files = []Attachment{}
	}

	return &LogEntry{
		caseID:  caseID,
		author:  author,
		message: message,
		files:   files,
		at:      time.Now().UTC(),
	}, nil
}

func ReconstructLogEntry(
	id uint,
	caseID uint,
	author string,
	message string,
	files []Attachment,
	at time.Time,
) (*LogEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("log entry ID cannot be zero")
	}
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}

	if files == nil {
		files = []Attachment{}
	}

	return &LogEntry{
		id:      id,
		caseID:  caseID,
		author:  author,
		message: message,
		files:   files,
		at:      at,
	}, nil
}

func (e *LogEntry) ID() uint {
	return e.id
}

func (e *LogEntry) CaseID() uint {
	return e.caseID
}

func (e *LogEntry) Author() string {
	return e.author
}

func (e *LogEntry) Message() string {
	return e.message
}

func (e *LogEntry) Files() []Attachment {
	filesCopy := make([]Attachment, len(e.files))
	copy(filesCopy, e.files)
	return filesCopy
}

func (e *LogEntry) At() time.Time {
	return e.at
}

func (e *LogEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("log entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("log entry ID cannot be zero")
	}
	e.id = id
	return nil
}
