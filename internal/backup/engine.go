// Package backup assembles and re-ingests the single portable snapshot of
// everything the device persists. Assembly is pure; restore replaces all
// five collections behind a pre-commit snapshot so a midway failure rolls
// back instead of leaving a half-restored app.
package backup

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/internal/pos"
	"github.com/fizanhabeeb/gracepos/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidFormat is surfaced to the user as "invalid or corrupted
// backup file". Restore aborts before mutating any store.
var ErrInvalidFormat = errors.New("invalid backup format")

type Engine struct {
	pos *pos.Store
}

func NewEngine(p *pos.Store) *Engine {
	return &Engine{pos: p}
}

// CreateBackupObject reads the current state through the domain accessors
// and assembles one document. It never mutates anything.
func (e *Engine) CreateBackupObject() *domain.BackupDocument {
	settings := e.pos.LoadSettings()
	return &domain.BackupDocument{
		SchemaVersion: domain.BackupSchemaVersion,
		Menu:          e.pos.LoadMenu(),
		Categories:    e.pos.LoadCategories(),
		Settings:      &settings,
		History:       e.pos.LoadOrderHistory(),
		Expenses:      e.pos.LoadExpenses(),
	}
}

// requiredKeys is the collection set every versioned export carries. A
// version-0 document (the pre-versioned export format) only has to be
// recognizable by a history or menu field.
var requiredKeys = []string{"menu", "categories", "settings", "history", "expenses"}

// Parse validates raw JSON and decodes it. Unknown extra fields are
// tolerated for forward compatibility, unknown future versions are not.
// A versioned document missing any collection key is treated as damaged:
// an intact export always carries all five.
func Parse(data []byte) (*domain.BackupDocument, error) {
	var probe map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, ErrInvalidFormat
	}
	// documents without the field decode as 0, the pre-versioned format
	var version int
	if raw, ok := probe["schemaVersion"]; ok {
		if err := json.Unmarshal(raw, &version); err != nil {
			return nil, ErrInvalidFormat
		}
	}
	if version > domain.BackupSchemaVersion {
		return nil, errors.Wrapf(ErrInvalidFormat,
			"schema version %d is newer than this build", version)
	}
	if version >= 1 {
		for _, key := range requiredKeys {
			if _, ok := probe[key]; !ok {
				return nil, errors.Wrapf(ErrInvalidFormat, "missing %s", key)
			}
		}
	} else {
		if _, hasHistory := probe["history"]; !hasHistory {
			if _, hasMenu := probe["menu"]; !hasMenu {
				return nil, ErrInvalidFormat
			}
		}
	}
	var doc domain.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidFormat
	}
	return &doc, nil
}

// RestoreFromBackupObject replaces menu, categories, settings, history and
// expenses with the document's contents. Returns false on any failure; a
// failure after the first write triggers rollback to the pre-commit
// snapshot (best effort — a rollback failure is logged loudly and still
// reported as overall failure).
func (e *Engine) RestoreFromBackupObject(doc *domain.BackupDocument) bool {
	if doc == nil {
		return false
	}
	if doc.History == nil && doc.Menu == nil {
		return false
	}

	snapshot := e.CreateBackupObject()

	if err := e.commit(doc); err != nil {
		zap.S().Errorf("restore failed: %s", err.Error())
		if rbErr := e.commit(snapshot); rbErr != nil {
			zap.S().Errorf("restore rollback failed, state may be partial: %s", rbErr.Error())
		}
		return false
	}

	store.AuditLog(e.pos.DB(), "backup_restored",
		fmt.Sprintf("schema v%d, %d orders, %d expenses",
			doc.SchemaVersion, len(doc.History), len(doc.Expenses)))
	return true
}

// RestoreFullBackup is the raw-bytes entry point used by the file and API
// boundaries: validate first, mutate second.
func (e *Engine) RestoreFullBackup(data []byte) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	if !e.RestoreFromBackupObject(doc) {
		return errors.New("restore failed")
	}
	return nil
}

// UpdateLastBackupTimestamp stamps Settings.lastBackupTimestamp with now.
func (e *Engine) UpdateLastBackupTimestamp() bool {
	return e.pos.UpdateLastBackupTimestamp()
}

// commit writes all five collections in one bounded sequence.
func (e *Engine) commit(doc *domain.BackupDocument) error {
	if !e.pos.SaveMenu(emptyWhenNil(doc.Menu)) {
		return errors.New("menu replace failed")
	}
	if !e.pos.SaveCategories(doc.Categories) {
		return errors.New("categories replace failed")
	}
	settings := domain.DefaultSettings()
	if doc.Settings != nil {
		settings = *doc.Settings
	}
	if !e.pos.SaveSettings(settings) {
		return errors.New("settings replace failed")
	}

	if err := e.pos.Orders().Clear(); err != nil {
		return errors.Wrap(err, "history clear")
	}
	var maxBill int64
	for _, order := range doc.History {
		if !e.pos.SaveOrderToHistory(order) {
			return errors.Errorf("history replace failed at %s", order.ID)
		}
		if order.BillNumber > maxBill {
			maxBill = order.BillNumber
		}
	}
	// keep future bill numbers ahead of everything just restored
	e.pos.Kv().BumpSequence(domain.KvBillSequence, maxBill)

	if err := e.pos.Expenses().Clear(); err != nil {
		return errors.Wrap(err, "expenses clear")
	}
	for _, exp := range doc.Expenses {
		if !e.pos.AddExpense(exp) {
			return errors.Errorf("expenses replace failed at %s", exp.ID)
		}
	}
	return nil
}

func emptyWhenNil(items []domain.MenuItem) []domain.MenuItem {
	if items == nil {
		return []domain.MenuItem{}
	}
	return items
}
