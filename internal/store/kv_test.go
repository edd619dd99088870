package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))
	return db
}

func TestKvGetMissingKeepsDefault(t *testing.T) {
	kv := NewKvStore(newTestDB(t))

	value := "fallback"
	assert.False(t, kv.Get("nothing", &value))
	assert.Equal(t, "fallback", value)
}

func TestKvSetGetRoundTrip(t *testing.T) {
	kv := NewKvStore(newTestDB(t))

	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	require.True(t, kv.Set("item", payload{Name: "Masala Dosa", Price: 80}))

	var got payload
	require.True(t, kv.Get("item", &got))
	assert.Equal(t, "Masala Dosa", got.Name)
	assert.Equal(t, 80.0, got.Price)
}

func TestKvCorruptEntryFallsBack(t *testing.T) {
	db := newTestDB(t)
	kv := NewKvStore(db)

	require.NoError(t, db.Create(&domain.PosKv{Name: "broken", Value: "{not json"}).Error)

	got := map[string]string{"keep": "me"}
	assert.False(t, kv.Get("broken", &got))
	assert.Equal(t, "me", got["keep"])
}

func TestKvCorruptTailLeavesDefaultIntact(t *testing.T) {
	db := newTestDB(t)
	kv := NewKvStore(db)

	// parses partway into the array before failing
	require.NoError(t, db.Create(&domain.PosKv{
		Name: "items", Value: `[{"name":"A"},{"name":`,
	}).Error)

	got := []map[string]string{{"keep": "me"}}
	assert.False(t, kv.Get("items", &got))
	require.Len(t, got, 1, "a mid-document error never leaves a partial decode")
	assert.Equal(t, "me", got[0]["keep"])
}

func TestKvSetOverwrites(t *testing.T) {
	kv := NewKvStore(newTestDB(t))

	require.True(t, kv.Set("k", 1))
	require.True(t, kv.Set("k", 2))

	var got int
	require.True(t, kv.Get("k", &got))
	assert.Equal(t, 2, got)
}

func TestKvNextSequence(t *testing.T) {
	kv := NewKvStore(newTestDB(t))

	first, err := kv.NextSequence("bill")
	require.NoError(t, err)
	second, err := kv.NextSequence("bill")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestKvBumpSequenceOnlyRaises(t *testing.T) {
	kv := NewKvStore(newTestDB(t))

	kv.BumpSequence("bill", 40)
	next, err := kv.NextSequence("bill")
	require.NoError(t, err)
	assert.Equal(t, int64(41), next)

	// lower bumps are ignored
	kv.BumpSequence("bill", 5)
	next, err = kv.NextSequence("bill")
	require.NoError(t, err)
	assert.Equal(t, int64(42), next)
}
