package assets

import "strconv"

// ItemSlots is the number of item slots of a participant, trinket included.
const ItemSlots = 7

// IsEquippedItem reports whether a slot holds an item. 0 is an empty slot.
func IsEquippedItem(itemID int) bool {
	return itemID > 0
}

// ItemAssetKey returns the image key of an item. Empty slots and invalid ids have no image.
func ItemAssetKey(itemID int) (string, bool) {
	if !IsEquippedItem(itemID) {
		return "", false
	}
	return strconv.Itoa(itemID), true
}
