package domain

import (
	"time"
)

// PosKv is the generic key/value row backing settings, menu, categories
// and the in-progress order. Value holds a JSON-serialized document.
type PosKv struct {
	Name      string    `gorm:"primaryKey;size:128" json:"name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (PosKv) TableName() string {
	return "pos_kv"
}

// PosAuditLog records operator-visible actions (order completed, restore
// run, history cleared) for the owner's review. ID is assigned by the
// writer, the table never auto-increments.
type PosAuditLog struct {
	ID      int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Action  string    `gorm:"index" json:"action"`
	Detail  string    `json:"detail"`
	OptTime time.Time `json:"opt_time"`
}

// TableName Specify table name
func (PosAuditLog) TableName() string {
	return "pos_audit_log"
}

// Well-known KV store keys. The legacy store used the same names, which
// keeps the migration copy step a straight key-for-key transfer.
const (
	KvMenuItems     = "menuItems"
	KvCategories    = "categories"
	KvSettings      = "hotelSettings"
	KvCurrentOrder  = "currentOrder"
	KvBillSequence  = "order.bill_seq"
	KvMigrationFlag = "migration.rowstore.done"
)
