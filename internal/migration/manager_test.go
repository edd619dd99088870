package migration

import (
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/internal/legacy"
	"github.com/fizanhabeeb/gracepos/internal/store"
	"github.com/fizanhabeeb/gracepos/pkg/common"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fixture struct {
	kv       *store.KvStore
	orders   *store.OrderStore
	expenses *store.ExpenseStore
	path     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))
	return &fixture{
		kv:       store.NewKvStore(db),
		orders:   store.NewOrderStore(db),
		expenses: store.NewExpenseStore(db),
		path:     filepath.Join(dir, "legacy.db"),
	}
}

// writeLegacy builds a first-generation store file with the given entries.
func writeLegacy(t *testing.T, path string, entries map[string]interface{}) {
	t.Helper()
	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(legacy.BucketName)
		if err != nil {
			return err
		}
		for key, value := range entries {
			raw, err := json.Marshal(value)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(key), raw); err != nil {
				return err
			}
		}
		return nil
	}))
}

func TestRunFreshInstallSetsFlag(t *testing.T) {
	f := newFixture(t)

	m := NewManager(f.path, f.kv, f.orders, f.expenses)
	require.NoError(t, m.Run())

	var done bool
	require.True(t, f.kv.Get(domain.KvMigrationFlag, &done))
	assert.True(t, done)
}

func TestRunDrainsLegacyStore(t *testing.T) {
	f := newFixture(t)

	writeLegacy(t, f.path, map[string]interface{}{
		"orderHistory": []domain.HistoryOrder{
			{
				ID:         "legacy-1",
				BillNumber: 7,
				Items:      []domain.OrderLine{{ItemID: "m1", Name: "Idli", Price: 40, Quantity: 2}},
				GrandTotal: 80,
				Date:       "2024-07-13 21:15:00",
			},
			{
				// no id, no date at all: hand-edited record
				BillNumber: 3,
				Items:      []domain.OrderLine{{ItemID: "m2", Name: "Vada", Price: 50, Quantity: 1}},
				GrandTotal: 50,
			},
		},
		"expenses": []domain.Expense{
			{ID: "e1", Category: "Gas", Amount: 900, Date: "2024-07-10 08:00:00"},
		},
		domain.KvMenuItems: []domain.MenuItem{
			{ID: "m1", Name: "Idli", Price: 40, Category: "Breakfast"},
		},
		domain.KvSettings: domain.Settings{
			HotelName:  "ANNAPOORNA",
			PinEnabled: true,
			AdminPin:   "1234",
		},
	})

	m := NewManager(f.path, f.kv, f.orders, f.expenses)
	require.NoError(t, m.Run())

	orders, err := f.orders.ListAll()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.NotEmpty(t, o.ID)
		assert.NotZero(t, o.Timestamp, "every migrated order gets an indexable instant")
		assert.Equal(t, domain.PaymentCash, o.PaymentMode)
	}

	// the display date drives the index timestamp when present
	var migrated domain.HistoryOrder
	for _, o := range orders {
		if o.ID == "legacy-1" {
			migrated = o
		}
	}
	want, err := time.ParseInLocation("2006-01-02 15:04:05", "2024-07-13 21:15:00", time.Local)
	require.NoError(t, err)
	assert.Equal(t, want.UnixMilli(), migrated.Timestamp)

	expenses, err := f.expenses.ListAll()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.NotZero(t, expenses[0].Timestamp)

	var menu []domain.MenuItem
	require.True(t, f.kv.Get(domain.KvMenuItems, &menu))
	require.Len(t, menu, 1)
	assert.Equal(t, "Idli", menu[0].Name)

	// the plaintext PIN never reaches the new store
	var settings domain.Settings
	require.True(t, f.kv.Get(domain.KvSettings, &settings))
	assert.Equal(t, "ANNAPOORNA", settings.HotelName)
	assert.NotEqual(t, "1234", settings.AdminPin)
	assert.Equal(t, common.Sha256HashWithSalt("1234", common.GetSecretSalt()), settings.AdminPin)

	// bill counter continues past the highest migrated bill
	next, err := f.kv.NextSequence(domain.KvBillSequence)
	require.NoError(t, err)
	assert.Equal(t, int64(8), next)

	var done bool
	require.True(t, f.kv.Get(domain.KvMigrationFlag, &done))
	assert.True(t, done)
}

func TestRunIsIdempotent(t *testing.T) {
	f := newFixture(t)

	writeLegacy(t, f.path, map[string]interface{}{
		"orderHistory": []domain.HistoryOrder{
			{ID: "o1", BillNumber: 1, GrandTotal: 100, Date: "2024-07-13 21:15:00"},
		},
	})

	m := NewManager(f.path, f.kv, f.orders, f.expenses)
	require.NoError(t, m.Run())

	// data removed after migration must stay removed
	require.True(t, f.orders.Remove("o1"))
	require.NoError(t, m.Run())

	orders, err := f.orders.ListAll()
	require.NoError(t, err)
	assert.Empty(t, orders, "flagged migration never re-imports")
}

func TestRunRetriesWithoutDuplicates(t *testing.T) {
	f := newFixture(t)

	writeLegacy(t, f.path, map[string]interface{}{
		"orderHistory": []domain.HistoryOrder{
			{ID: "o1", BillNumber: 1, GrandTotal: 100, Date: "2024-07-13 21:15:00"},
		},
	})

	m := NewManager(f.path, f.kv, f.orders, f.expenses)
	require.NoError(t, m.Run())
	// simulate a crash before the flag write
	f.kv.Delete(domain.KvMigrationFlag)
	require.NoError(t, m.Run())

	orders, err := f.orders.ListAll()
	require.NoError(t, err)
	assert.Len(t, orders, 1, "replay by identifier replaces instead of duplicating")
}

func TestParseLegacyDate(t *testing.T) {
	fallback := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	want, err := time.ParseInLocation("2006-01-02 15:04:05", "2024-07-13 21:15:00", time.Local)
	require.NoError(t, err)
	assert.Equal(t, want.UnixMilli(), parseLegacyDate("2024-07-13 21:15:00", fallback))

	assert.Equal(t, fallback.UnixMilli(), parseLegacyDate("", fallback))
	assert.Equal(t, fallback.UnixMilli(), parseLegacyDate("not a date", fallback))
}
