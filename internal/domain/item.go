package domain

import "strings"

// Item is a sellable or purchasable object, keyed by its qualified id
// such as "(O)24".
type Item struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	Name      string `json:"name" yaml:"name"`
	SellPrice int    `json:"sell_price" yaml:"sell_price" validate:"min=0"`
	Category  string `json:"category,omitempty" yaml:"category"`
}

// UnqualifiedID strips a leading type qualifier like "(O)" from an item id.
func UnqualifiedID(id string) string {
	if strings.HasPrefix(id, "(") {
		if end := strings.Index(id, ")"); end >= 0 {
			return id[end+1:]
		}
	}
	return id
}

// QualifiedObjectID adds the object qualifier to a bare id.
func QualifiedObjectID(id string) string {
	if strings.HasPrefix(id, "(") {
		return id
	}
	return "(O)" + id
}
