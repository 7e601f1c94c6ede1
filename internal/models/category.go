package models

// Category is a named bucket that transactions are assigned to.
type Category struct {
	Base
	Name      string `gorm:"not null" json:"name"`
	IsExpense bool   `gorm:"not null" json:"is_expense"`
	ColorHex  string `json:"color_hex"`
}

// DefaultCategories are seeded, in this order, into an empty store on first
// start. On a fresh table they receive ids 1 through 5.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Other", IsExpense: true, ColorHex: "#E57373"},
		{Name: "Food", IsExpense: true, ColorHex: "#FFB74D"},
		{Name: "Salary", IsExpense: false, ColorHex: "#81C784"},
		{Name: "Transport", IsExpense: true, ColorHex: "#64B5F6"},
		{Name: "Entertainment", IsExpense: true, ColorHex: "#BA68C8"},
	}
}
