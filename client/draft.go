package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDraftNotFound is returned by DraftStore implementations when no draft is
// saved under a key.
var ErrDraftNotFound = errors.New("wizard draft not found")

// WizardDraft is the customer's in-progress booking wizard state. It survives
// page reloads via a DraftStore so a half-completed wizard can resume.
type WizardDraft struct {
	Step       int       `json:"step"`
	Date       string    `json:"date,omitempty"`
	TimeSlotID uuid.UUID `json:"timeSlotId,omitempty"`
	Email      string    `json:"email,omitempty"`
	FirstName  string    `json:"firstName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Location   string    `json:"location,omitempty"`
}

// DraftStore is a small keyed blob store for wizard drafts.
type DraftStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

func SaveDraft(store DraftStore, key string, draft WizardDraft) error {
	encoded, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return store.Set(key, encoded)
}

func LoadDraft(store DraftStore, key string) (WizardDraft, error) {
	raw, err := store.Get(key)
	if err != nil {
		return WizardDraft{}, err
	}
	var draft WizardDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return WizardDraft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func ClearDraft(store DraftStore, key string) error {
	return store.Delete(key)
}

// MemoryDraftStore is an in-process DraftStore, useful for tests and CLI
// consumers that do not need persistence.
type MemoryDraftStore struct {
	drafts map[string][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string][]byte)}
}

func (s *MemoryDraftStore) Get(key string) ([]byte, error) {
	raw, ok := s.drafts[key]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return raw, nil
}

func (s *MemoryDraftStore) Set(key string, value []byte) error {
	s.drafts[key] = value
	return nil
}

func (s *MemoryDraftStore) Delete(key string) error {
	delete(s.drafts, key)
	return nil
}
