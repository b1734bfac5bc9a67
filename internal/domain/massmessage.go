package domain

import (
	"bytes"
	"fmt"
)

// QueueStatus is the reconciliation state of a mass message.
// It is persisted as "" (unresolved), true (found) or false (not found).
type QueueStatus int

const (
	StatusUnresolved QueueStatus = iota
	StatusFound
	StatusNotFound
)

func (s QueueStatus) MarshalJSON() ([]byte, error) {
	switch s {
	case StatusFound:
		return []byte("true"), nil
	case StatusNotFound:
		return []byte("false"), nil
	default:
		return []byte(`""`), nil
	}
}

func (s *QueueStatus) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*s = StatusFound
	case "false":
		*s = StatusNotFound
	case `""`, "null":
		*s = StatusUnresolved
	default:
		return fmt.Errorf("invalid mass message status %s", data)
	}
	return nil
}

// MassMessage is a queue entry with the annotations kept in Mass Messages.json.
type MassMessage struct {
	ID          int64          `json:"id"`
	TextCropped string         `json:"textCropped"`
	IsCanceled  bool           `json:"isCanceled"`
	MediaType   string         `json:"mediaType,omitempty"`
	MediaTypes  map[string]int `json:"mediaTypes,omitempty"`
	CreatedAt   string         `json:"date,omitempty"`

	Status     QueueStatus `json:"status"`
	Found      *Message    `json:"found"`
	HashedIP   string      `json:"hashed_ip"`
	DateHashed string      `json:"date_hashed"`
}

func (m *MassMessage) HasMedia() bool {
	return m.MediaType != "" || len(m.MediaTypes) > 0
}

// Annotate copies reconciliation annotations from a previously persisted entry.
func (m *MassMessage) Annotate(prev *MassMessage) {
	m.Status = prev.Status
	m.Found = prev.Found
	m.HashedIP = prev.HashedIP
	m.DateHashed = prev.DateHashed
}

type MessageList struct {
	List    []*Message `json:"list"`
	HasMore bool       `json:"hasMore,omitempty"`
}

// Chat is one entry of Chats.json.
type Chat struct {
	Identifier int64       `json:"identifier"`
	Messages   MessageList `json:"messages"`
}

// ChatSearchItem is a chat returned by a message search.
type ChatSearchItem struct {
	WithUser User `json:"withUser"`
}
