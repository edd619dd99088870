package domain

// ReservedCategory denotes "no filter" on the menu screens; it is always
// present in the category set and can never be deleted or renamed.
const ReservedCategory = "All"

// Variant is a sellable variation of a MenuItem (half/full plate etc.).
// It is owned by its item and dies with it.
type Variant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MenuItem represents one dish on the menu. Image holds a reference to
// externally stored binary content, never the content itself.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	HasVariants bool      `json:"hasVariants"`
	Variants    []Variant `json:"variants,omitempty"`
}
