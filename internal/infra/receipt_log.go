package infra

// receipt_log.go: JSON mirror of placed bills.
// The file holds one JSON array; each placed order appends {order, items}.
// A missing or unreadable file starts a new list, and a file holding a single
// non-array document is kept as the first element. The ledger stays the
// source of truth: this file can be deleted at any time.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
)

type ReceiptLog struct {
	path string
	mu   sync.Mutex
}

func NewReceiptLog(path string) *ReceiptLog {
	return &ReceiptLog{path: path}
}

func (l *ReceiptLog) Path() string { return l.path }

// Append adds receipt to the end of the list. The file is rewritten through a
// temp file and rename so a crash never leaves half a document behind.
func (l *ReceiptLog) Append(receipt *dto.OrderResponse) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("receipt log: create dir: %w", err)
	}

	doc, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("receipt log: encode: %w", err)
	}
	docs := append(l.load(), doc)

	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("receipt log: encode list: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".receipts-*.json")
	if err != nil {
		return fmt.Errorf("receipt log: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return fmt.Errorf("receipt log: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("receipt log: close: %w", err)
	}
	return os.Rename(tmp.Name(), l.path)
}

// load never fails: anything it cannot parse is dropped.
func (l *ReceiptLog) load() []json.RawMessage {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		return list
	}
	var single json.RawMessage
	if err := json.Unmarshal(data, &single); err == nil {
		return []json.RawMessage{single}
	}
	return nil
}
