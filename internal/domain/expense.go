package domain

// Expense is a single outgoing payment recorded by the owner. Never
// mutated after creation, only deleted.
type Expense struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Timestamp   int64   `json:"timestamp"`
}

// PosExpense is the indexed row wrapping a serialized Expense.
type PosExpense struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	Category  string  `gorm:"index" json:"category"`
	DateText  string  `json:"date_text"`
	Timestamp int64   `gorm:"index" json:"timestamp"`
	Amount    float64 `json:"amount"`
	Data      string  `json:"data"`
}

// TableName Specify table name
func (PosExpense) TableName() string {
	return "pos_expense"
}
