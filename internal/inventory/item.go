// Package inventory provides items and the slot-limited containers that hold them.
package inventory

// Item is anything a container can hold. Items are passed around by pointer and
// compared by identity, so two items with the same name stay distinct.
type Item interface {
	Name() string
}

// Thing is a plain named item. Armor and Container build on it.
type Thing struct {
	name string
}

// NewItem creates a new item with the given display name.
func NewItem(name string) *Thing {
	return &Thing{name: name}
}

// Name returns the display name.
func (t *Thing) Name() string {
	return t.name
}

// DefaultResistance is the resistance given to new armor.
const DefaultResistance = 10

// Armor is an item that also carries a resistance value.
// Gameplay does not read Resistance yet.
type Armor struct {
	Thing
	Resistance int
}

// NewArmor creates armor with DefaultResistance.
func NewArmor(name string) *Armor {
	return &Armor{
		Thing:      Thing{name: name},
		Resistance: DefaultResistance,
	}
}

var (
	_ Item = (*Thing)(nil)
	_ Item = (*Armor)(nil)
	_ Item = (*Container)(nil)
)
