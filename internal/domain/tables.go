package domain

var Tables = []interface{}{
	// System
	&PosKv{},
	&PosAuditLog{},
	// Row stores
	&PosOrder{},
	&PosExpense{},
}
