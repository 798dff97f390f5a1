package inventory

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultSlots is the number of slots a container gets unless told otherwise.
const DefaultSlots = 6

// ErrItemNotFound is returned when an item is taken from a container that does not hold it.
var ErrItemNotFound = errors.New("item not in container")

// Container is an ordered, slot-limited holder of items.
// Contents are kept in insertion order, which is also display order.
// len(Contents) never exceeds Slots.
type Container struct {
	Thing
	Slots    int
	Contents []Item
}

// NewContainer creates an empty container with the given number of slots.
func NewContainer(name string, slots int) *Container {
	return &Container{
		Thing:    Thing{name: name},
		Slots:    slots,
		Contents: make([]Item, 0, slots),
	}
}

// IsFull returns true if no free slot is left.
func (c *Container) IsFull() bool {
	return len(c.Contents) >= c.Slots
}

// Contains returns true if this exact item is in the container.
func (c *Container) Contains(item Item) bool {
	return slices.Contains(c.Contents, item)
}

// Add puts an item into a free slot. Returns false if the container is full.
func (c *Container) Add(item Item) bool {
	if c.IsFull() {
		return false
	}
	c.Contents = append(c.Contents, item)
	return true
}

// MoveItem moves item out of from and into this container.
//
// A full container makes the call a no-op: nothing moves and no message is
// produced. The returned messages are reserved for player feedback and are
// currently always empty. Moving an item that from does not hold is a logic
// error and returns ErrItemNotFound.
func (c *Container) MoveItem(from *Container, item Item) ([]string, error) {
	messages := []string{}

	if c.IsFull() {
		return messages, nil
	}

	if !from.Contains(item) {
		return messages, fmt.Errorf("move %q from %q: %w", item.Name(), from.Name(), ErrItemNotFound)
	}

	idx := slices.Index(from.Contents, item)
	from.Contents = slices.Delete(from.Contents, idx, idx+1)
	c.Contents = append(c.Contents, item)

	return messages, nil
}

// Display returns the container's header followed by one line per slot in use.
func (c *Container) Display() []string {
	lines := []string{fmt.Sprintf("--- %s ---", c.Name())}
	if len(c.Contents) == 0 {
		lines = append(lines, "  nothing here")
	}
	for slot, item := range c.Contents {
		lines = append(lines, fmt.Sprintf("%d: %s", slot+1, item.Name()))
	}
	return lines
}
