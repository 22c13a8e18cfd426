package cart

import (
	"testing"

	"balajee_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sofa() models.Product {
	return models.Product{
		ID:        "l1",
		Name:      "Aurum Velvet Sofa",
		Price:     145000,
		ImageURLs: []string{"https://cdn.example.com/sofa.jpg"},
	}
}

func chair() models.Product {
	return models.Product{ID: "l3", Name: "Icon Lounge Chair", Price: 85000}
}

func TestAdd_MergesSameVariant(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{SelectedColor: "Red"})
	items = Add(items, sofa(), AddOptions{SelectedColor: "Red", Quantity: 2})

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "Red", items[0].SelectedColor)
}

func TestAdd_DifferentColorCreatesNewLine(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{SelectedColor: "Red"})
	items = Add(items, sofa(), AddOptions{SelectedColor: "Blue"})

	require.Len(t, items, 2)
	assert.Equal(t, "Red", items[0].SelectedColor)
	assert.Equal(t, "Blue", items[1].SelectedColor)
}

func TestAdd_DifferentSizeCreatesNewLine(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{SelectedSize: "3-Seater"})
	items = Add(items, sofa(), AddOptions{SelectedSize: "4-Seater"})

	require.Len(t, items, 2)
}

func TestAdd_NoVariantMergesWithNoVariant(t *testing.T) {
	items := Add(nil, chair(), AddOptions{})
	items = Add(items, chair(), AddOptions{})

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_DefaultQuantityIsOne(t *testing.T) {
	items := Add(nil, chair(), AddOptions{Quantity: 0})
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAdd_SnapshotsProductFields(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{})
	require.Len(t, items, 1)
	assert.Equal(t, "Aurum Velvet Sofa", items[0].Name)
	assert.Equal(t, 145000.0, items[0].Price)
	assert.Equal(t, "https://cdn.example.com/sofa.jpg", items[0].ImageURL)
}

func TestAdd_AppendsAtEnd(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{})
	items = Add(items, chair(), AddOptions{})

	require.Len(t, items, 2)
	assert.Equal(t, "l1", items[0].ProductID)
	assert.Equal(t, "l3", items[1].ProductID)
}

func TestUpdateQuantity_ClampsAtOne(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{Quantity: 2})
	key := KeyOf(items[0])

	items = UpdateQuantity(items, key, -5)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantity_IncrementAndDecrement(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{})
	key := KeyOf(items[0])

	items = UpdateQuantity(items, key, 3)
	assert.Equal(t, 4, items[0].Quantity)

	items = UpdateQuantity(items, key, -1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestUpdateQuantity_UnknownKeyIsNoop(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{})
	items = UpdateQuantity(items, LineKey{ProductID: "zzz"}, 5)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemove_OnlyTargetedVariant(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{SelectedColor: "Red"})
	items = Add(items, sofa(), AddOptions{SelectedColor: "Blue"})

	items = Remove(items, LineKey{ProductID: "l1", SelectedColor: "Red"})

	require.Len(t, items, 1)
	assert.Equal(t, "Blue", items[0].SelectedColor)
}

func TestRemove_UnknownKeyIsNoop(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{})
	before := len(items)

	items = Remove(items, LineKey{ProductID: "absent"})

	assert.Len(t, items, before)
}

func TestTotal_SumOfPriceTimesQuantity(t *testing.T) {
	items := Add(nil, sofa(), AddOptions{Quantity: 2})  // 290000
	items = Add(items, chair(), AddOptions{})           // 85000

	assert.Equal(t, 375000.0, Total(items))

	items = Remove(items, LineKey{ProductID: "l3"})
	assert.Equal(t, 290000.0, Total(items))
}

func TestTotal_EmptyCartIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil))
}
