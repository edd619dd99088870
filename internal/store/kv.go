package store

import (
	"errors"
	"reflect"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fizanhabeeb/gracepos/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KvStore maps string keys to JSON-serialized documents in the pos_kv
// table. A missing or corrupt entry is never an error for the caller: Get
// leaves the caller-supplied default in place and reports false.
type KvStore struct {
	db *gorm.DB
}

func NewKvStore(db *gorm.DB) *KvStore {
	return &KvStore{db: db}
}

// Get unmarshals the stored value for name into out. Returns false when
// the key is absent or the stored text does not parse; out is untouched in
// that case so callers keep their default.
func (s *KvStore) Get(name string, out interface{}) bool {
	var row domain.PosKv
	err := s.db.Where("name = ?", name).First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.S().Debugf("kv read %s failed: %s", name, err.Error())
		}
		return false
	}
	// decode into a fresh value first; a mid-document parse error must not
	// leave out partially written
	tmp := reflect.New(reflect.ValueOf(out).Elem().Type())
	if err := json.UnmarshalFromString(row.Value, tmp.Interface()); err != nil {
		zap.S().Warnf("kv entry %s is corrupt, using default: %s", name, err.Error())
		return false
	}
	reflect.ValueOf(out).Elem().Set(tmp.Elem())
	return true
}

// Set serializes value and upserts it under name.
func (s *KvStore) Set(name string, value interface{}) bool {
	text, err := json.MarshalToString(value)
	if err != nil {
		zap.S().Errorf("kv marshal %s failed: %s", name, err.Error())
		return false
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&domain.PosKv{Name: name, Value: text, UpdatedAt: time.Now()}).Error
	if err != nil {
		zap.S().Errorf("kv write %s failed: %s", name, err.Error())
		return false
	}
	return true
}

// Exists reports whether a value is stored under name.
func (s *KvStore) Exists(name string) bool {
	var count int64
	s.db.Model(&domain.PosKv{}).Where("name = ?", name).Count(&count)
	return count > 0
}

// Delete removes the entry for name; deleting an absent key is a no-op.
func (s *KvStore) Delete(name string) bool {
	return s.db.Where("name = ?", name).Delete(&domain.PosKv{}).Error == nil
}

// NextSequence atomically increments and returns the counter stored under
// name, starting at 1. Used for bill numbers so they survive history
// deletion instead of being re-derived from list length.
func (s *KvStore) NextSequence(name string) (int64, error) {
	var next int64
	// sqlite serializes writers per transaction, no row lock needed
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var row domain.PosKv
		err := tx.Where("name = ?", name).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			next = 1
		case err != nil:
			return err
		default:
			if err := json.UnmarshalFromString(row.Value, &next); err != nil {
				next = 0
			}
			next++
		}
		text, _ := json.MarshalToString(next)
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&domain.PosKv{Name: name, Value: text, UpdatedAt: time.Now()}).Error
	})
	return next, err
}

// BumpSequence raises the counter to at least value; used when restoring a
// backup whose history carries higher bill numbers than the local counter.
func (s *KvStore) BumpSequence(name string, value int64) {
	var current int64
	s.Get(name, &current)
	if value > current {
		s.Set(name, value)
	}
}
