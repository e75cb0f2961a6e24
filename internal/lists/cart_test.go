package lists

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartList_MergeOnName(t *testing.T) {
	l := NewCartList(fixedClock)

	res, err := l.Add("Apple", "2.0", "3")
	require.NoError(t, err)
	assert.False(t, res.Merged)
	assert.Equal(t, 0, res.Position)

	res, err = l.Add("Apple", "5.0", "2")
	require.NoError(t, err)
	assert.True(t, res.Merged)
	assert.Equal(t, 0, res.Position)

	require.Equal(t, 1, l.Len())
	item, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
	assert.InDelta(t, 2.0, item.Price, 1e-9, "first price wins")
	assert.Equal(t, res.Item, item)
}

func TestCartList_InvalidPrice(t *testing.T) {
	l := NewCartList(fixedClock)
	_, err := l.Add("Milk", "1.5", "1")
	require.NoError(t, err)

	for _, raw := range []string{"-1", "0", "abc", "", "NaN", "Inf", "+Inf"} {
		_, err := l.Add("Bread", raw, "1")
		require.Error(t, err, "price %q", raw)
		assert.True(t, errors.Is(err, ErrValidation), "price %q", raw)
	}

	// a rejected add leaves an existing item untouched too
	_, err = l.Add("Milk", "abc", "4")
	require.Error(t, err)

	require.Equal(t, 1, l.Len())
	item, _ := l.At(0)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartList_MergeQuantityOverflow(t *testing.T) {
	l := NewCartList(fixedClock)
	_, err := l.Add("Apple", "2.0", "3")
	require.NoError(t, err)
	before := l.Info()

	_, err = l.Add("Apple", "2.0", strconv.Itoa(math.MaxInt))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	item, _ := l.At(0)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, before, l.Info())
}

func TestCartList_TotalOutOfRange(t *testing.T) {
	l := NewCartList(fixedClock)

	_, err := l.Add("Gold", "1e308", "10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, 0, l.Len())

	// each item finite on its own, but the cart sum would not be
	_, err = l.Add("Gold", "1e308", "1")
	require.NoError(t, err)
	_, err = l.Add("Platinum", "1e308", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = l.Add("Gold", "1", "1")
	require.Error(t, err)

	info := l.Info()
	assert.Equal(t, 1, info.TotalItems)
	assert.False(t, math.IsInf(info.TotalValue, 0))
}

func TestCartList_QuantityDefaults(t *testing.T) {
	l := NewCartList(fixedClock)

	res, err := l.Add("Apple", "1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Item.Quantity)

	res, err = l.Add("Pear", "1", "lots")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Item.Quantity)

	res, err = l.Add("Plum", "1", " 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Item.Quantity)
}

func TestCartList_RejectsNonPositiveQuantity(t *testing.T) {
	l := NewCartList(fixedClock)
	for _, raw := range []string{"0", "-3"} {
		_, err := l.Add("Apple", "1", raw)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	}
	assert.Equal(t, 0, l.Len())
}

func TestCartList_Info(t *testing.T) {
	l := NewCartList(fixedClock)
	assert.Equal(t, CartInfo{}, l.Info())

	_, err := l.Add("Apple", "2.0", "3")
	require.NoError(t, err)
	_, err = l.Add("Banana", "1.0", "2")
	require.NoError(t, err)

	info := l.Info()
	assert.Equal(t, 5, info.TotalItems)
	assert.InDelta(t, 8.0, info.TotalValue, 1e-9)
}

func TestCartList_RemoveAtShifts(t *testing.T) {
	l := NewCartList(fixedClock)
	for _, name := range []string{"Apple", "Banana", "Cherry"} {
		_, err := l.Add(name, "1", "1")
		require.NoError(t, err)
	}

	removed, err := l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Apple", removed.Name)

	first, _ := l.At(0)
	second, _ := l.At(1)
	assert.Equal(t, "Banana", first.Name)
	assert.Equal(t, "Cherry", second.Name)

	_, err = l.RemoveAt(2)
	assert.True(t, errors.Is(err, ErrIndex))
	assert.Equal(t, 2, l.Len())
}

func TestCartList_Clear(t *testing.T) {
	l := NewCartList(fixedClock)
	l.Clear()
	assert.Equal(t, 0, l.Len())

	_, _ = l.Add("Apple", "2", "3")
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, CartInfo{}, l.Info())
}
