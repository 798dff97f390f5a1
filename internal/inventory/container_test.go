package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	c := NewContainer("backpack", DefaultSlots)

	assert.Equal(t, "backpack", c.Name())
	assert.Equal(t, 6, c.Slots)
	assert.Empty(t, c.Contents)
	assert.False(t, c.IsFull())
}

func TestDisplayEmpty(t *testing.T) {
	c := NewContainer("chest", DefaultSlots)

	assert.Equal(t, []string{"--- chest ---", "  nothing here"}, c.Display())
}

func TestDisplayItems(t *testing.T) {
	c := NewContainer("backpack", DefaultSlots)
	c.Add(NewItem("A"))
	c.Add(NewItem("B"))

	assert.Equal(t, []string{"--- backpack ---", "1: A", "2: B"}, c.Display())
}

func TestMoveItem(t *testing.T) {
	potion := NewItem("small red potion")
	oil := NewItem("snake oil")

	from := NewContainer("backpack", DefaultSlots)
	from.Add(potion)
	from.Add(oil)
	to := NewContainer("chest", DefaultSlots)

	messages, err := to.MoveItem(from, potion)
	require.NoError(t, err)
	assert.Empty(t, messages)

	assert.Equal(t, []Item{oil}, from.Contents)
	assert.Equal(t, []Item{potion}, to.Contents)
}

func TestMoveItemIntoFullContainer(t *testing.T) {
	from := NewContainer("backpack", DefaultSlots)
	item := NewItem("rope")
	from.Add(item)

	to := NewContainer("pouch", 1)
	stone := NewItem("stone")
	to.Add(stone)

	messages, err := to.MoveItem(from, item)
	require.NoError(t, err)
	assert.Empty(t, messages)

	assert.Equal(t, []Item{item}, from.Contents)
	assert.Equal(t, []Item{stone}, to.Contents)
}

func TestMoveItemNotInSource(t *testing.T) {
	from := NewContainer("backpack", DefaultSlots)
	kept := NewItem("torch")
	from.Add(kept)
	to := NewContainer("chest", DefaultSlots)

	// Same name, different item.
	_, err := to.MoveItem(from, NewItem("torch"))
	require.ErrorIs(t, err, ErrItemNotFound)

	assert.Equal(t, []Item{kept}, from.Contents)
	assert.Empty(t, to.Contents)
}

func TestMoveItemNeverExceedsSlots(t *testing.T) {
	from := NewContainer("heap", 20)
	for i := 0; i < 20; i++ {
		from.Add(NewItem("pebble"))
	}
	to := NewContainer("pouch", 3)

	for len(from.Contents) > 0 {
		before := len(from.Contents)
		_, err := to.MoveItem(from, from.Contents[0])
		require.NoError(t, err)
		require.LessOrEqual(t, len(to.Contents), to.Slots)
		if len(from.Contents) == before {
			break
		}
	}

	assert.Len(t, to.Contents, 3)
	assert.Len(t, from.Contents, 17)
}

func TestAddRespectsSlots(t *testing.T) {
	c := NewContainer("pouch", 1)

	assert.True(t, c.Add(NewItem("coin")))
	assert.False(t, c.Add(NewItem("coin")))
	assert.Len(t, c.Contents, 1)
	assert.True(t, c.IsFull())
}

func TestArmor(t *testing.T) {
	armor := NewArmor("leather vest")
	assert.Equal(t, DefaultResistance, armor.Resistance)

	c := NewContainer("backpack", DefaultSlots)
	require.True(t, c.Add(armor))
	assert.True(t, c.Contains(armor))
	assert.Equal(t, []string{"--- backpack ---", "1: leather vest"}, c.Display())

	stored, ok := c.Contents[0].(*Armor)
	require.True(t, ok, "armor keeps its type inside a container")
	assert.Same(t, armor, stored)
	assert.Equal(t, DefaultResistance, stored.Resistance)
}

func TestContainerHoldsContainer(t *testing.T) {
	pouch := NewContainer("pouch", 2)
	pouch.Add(NewItem("coin"))

	backpack := NewContainer("backpack", DefaultSlots)
	require.True(t, backpack.Add(pouch))
	assert.Equal(t, []string{"--- backpack ---", "1: pouch"}, backpack.Display())

	inner, ok := backpack.Contents[0].(*Container)
	require.True(t, ok)
	assert.Equal(t, []string{"--- pouch ---", "1: coin"}, inner.Display())
}

func TestSameNameItemsStayDistinct(t *testing.T) {
	first := NewItem("coin")
	second := NewItem("coin")

	c := NewContainer("pouch", 2)
	c.Add(first)

	assert.True(t, c.Contains(first))
	assert.False(t, c.Contains(second))
}
