package domain

// Payment modes accepted at bill generation.
const (
	PaymentCash = "Cash"
	PaymentUPI  = "UPI"
	PaymentCard = "Card"
)

// OrderLine is one line of the cart. ItemID plus resolved Name form the
// composite key: the base item and each of its variants are independent
// lines. Price is a snapshot taken when the line was added.
type OrderLine struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// HistoryOrder is a completed bill. Totals are computed once at creation
// and stored; they are never recomputed later. Timestamp (unix milli) is
// the canonical instant, Date is display-only.
type HistoryOrder struct {
	ID            string      `json:"id"`
	BillNumber    int64       `json:"billNumber"`
	Items         []OrderLine `json:"items"`
	CustomerName  string      `json:"customerName,omitempty"`
	TableNumber   string      `json:"tableNumber,omitempty"`
	PhoneNumber   string      `json:"phoneNumber,omitempty"`
	Subtotal      float64     `json:"subtotal"`
	Gst           float64     `json:"gst"`
	GrandTotal    float64     `json:"grandTotal"`
	GstEnabled    bool        `json:"gstEnabled"`
	GstPercentage float64     `json:"gstPercentage"`
	PaymentMode   string      `json:"paymentMode"`
	Date          string      `json:"date"`
	Timestamp     int64       `json:"timestamp"`
}

// PosOrder is the indexed row wrapping a serialized HistoryOrder. The
// summary columns allow range filtering without deserializing every
// record; Data holds the full JSON document.
type PosOrder struct {
	ID         string  `gorm:"primaryKey;size:64" json:"id"`
	BillNumber int64   `json:"bill_number"`
	DateText   string  `json:"date_text"`
	Timestamp  int64   `gorm:"index" json:"timestamp"`
	GrandTotal float64 `json:"grand_total"`
	Data       string  `json:"data"`
}

// TableName Specify table name
func (PosOrder) TableName() string {
	return "pos_order"
}
