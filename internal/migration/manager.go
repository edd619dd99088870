// Package migration drains the first-generation unstructured store into
// the structured row/KV stores. It runs at startup before any accessor is
// trusted, at most once per install: the completion flag is the gate, and
// insert-or-replace by identifier keeps a retried run from duplicating
// anything the flag check missed.
package migration

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/internal/legacy"
	"github.com/fizanhabeeb/gracepos/internal/store"
	"github.com/fizanhabeeb/gracepos/pkg/common"
)

// Legacy list keys that move into the row stores instead of the KV store.
const (
	legacyOrderHistory = "orderHistory"
	legacyExpenses     = "expenses"
)

// kvCopyKeys are transferred key-for-key into the new KV store.
var kvCopyKeys = []string{
	domain.KvMenuItems,
	domain.KvCategories,
	domain.KvCurrentOrder,
}

type Manager struct {
	legacyPath string
	kv         *store.KvStore
	orders     *store.OrderStore
	expenses   *store.ExpenseStore
}

func NewManager(legacyPath string, kv *store.KvStore, orders *store.OrderStore, expenses *store.ExpenseStore) *Manager {
	return &Manager{
		legacyPath: legacyPath,
		kv:         kv,
		orders:     orders,
		expenses:   expenses,
	}
}

// Run performs the one-time copy. Step failures are logged and the run
// continues; the completion flag is only written after a fully clean pass
// so the next startup retries. Partial migration is preferred over
// blocking app startup.
func (m *Manager) Run() error {
	var done bool
	if m.kv.Get(domain.KvMigrationFlag, &done) && done {
		return nil
	}

	src, err := legacy.Open(m.legacyPath)
	if err == legacy.ErrNoStore {
		// fresh install, nothing to drain
		m.kv.Set(domain.KvMigrationFlag, true)
		return nil
	}
	if err != nil {
		zap.S().Errorf("migration: %s", err.Error())
		return err
	}
	defer src.Close()

	now := time.Now()
	clean := true
	clean = m.migrateOrders(src, now) && clean
	clean = m.migrateExpenses(src, now) && clean
	clean = m.migrateKvEntries(src) && clean
	clean = m.migrateSettings(src) && clean

	if !clean {
		zap.S().Warn("migration finished with skipped steps, will retry on next start")
		return nil
	}
	if !m.kv.Set(domain.KvMigrationFlag, true) {
		zap.S().Warn("migration completed but flag write failed, will re-run")
		return nil
	}
	zap.S().Info("legacy store migration complete")
	return nil
}

func (m *Manager) migrateOrders(src *legacy.Store, now time.Time) bool {
	var orders []domain.HistoryOrder
	found, err := src.Get(legacyOrderHistory, &orders)
	if err != nil {
		zap.S().Errorf("migration step orders: %s", err.Error())
		return false
	}
	if !found {
		return true
	}

	ok := true
	var maxBill int64
	for _, order := range orders {
		if order.ID == "" {
			order.ID = common.UUID()
		}
		if order.Timestamp == 0 {
			// the old store recorded only a display string; index on its
			// parsed instant, or on migration time when unparseable
			order.Timestamp = parseLegacyDate(order.Date, now)
		}
		if order.PaymentMode == "" {
			order.PaymentMode = domain.PaymentCash
		}
		if order.BillNumber > maxBill {
			maxBill = order.BillNumber
		}
		if err := m.orders.Insert(order); err != nil {
			zap.S().Errorf("migration step order %s: %s", order.ID, err.Error())
			ok = false
		}
	}
	m.kv.BumpSequence(domain.KvBillSequence, maxBill)
	return ok
}

func (m *Manager) migrateExpenses(src *legacy.Store, now time.Time) bool {
	var expenses []domain.Expense
	found, err := src.Get(legacyExpenses, &expenses)
	if err != nil {
		zap.S().Errorf("migration step expenses: %s", err.Error())
		return false
	}
	if !found {
		return true
	}

	ok := true
	for _, exp := range expenses {
		if exp.ID == "" {
			exp.ID = common.UUID()
		}
		if exp.Timestamp == 0 {
			exp.Timestamp = parseLegacyDate(exp.Date, now)
		}
		if err := m.expenses.Insert(exp); err != nil {
			zap.S().Errorf("migration step expense %s: %s", exp.ID, err.Error())
			ok = false
		}
	}
	return ok
}

func (m *Manager) migrateKvEntries(src *legacy.Store) bool {
	ok := true
	for _, key := range kvCopyKeys {
		var value interface{}
		found, err := src.Get(key, &value)
		if err != nil {
			zap.S().Errorf("migration step kv %s: %s", key, err.Error())
			ok = false
			continue
		}
		if !found {
			continue
		}
		if !m.kv.Set(key, value) {
			zap.S().Errorf("migration step kv %s: write failed", key)
			ok = false
		}
	}
	return ok
}

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func (m *Manager) migrateSettings(src *legacy.Store) bool {
	var settings domain.Settings
	found, err := src.Get(domain.KvSettings, &settings)
	if err != nil {
		zap.S().Errorf("migration step settings: %s", err.Error())
		return false
	}
	if !found {
		return true
	}
	// the old app stored the PIN in plaintext; hash it on the way over
	if settings.AdminPin != "" && !hexDigest.MatchString(settings.AdminPin) {
		settings.AdminPin = common.Sha256HashWithSalt(settings.AdminPin, common.GetSecretSalt())
	}
	if !m.kv.Set(domain.KvSettings, settings.Normalize()) {
		zap.S().Error("migration step settings: write failed")
		return false
	}
	return true
}

func parseLegacyDate(text string, fallback time.Time) int64 {
	if text == "" {
		return fallback.UnixMilli()
	}
	t, err := dateparse.ParseLocal(text)
	if err != nil {
		return fallback.UnixMilli()
	}
	return t.UnixMilli()
}
