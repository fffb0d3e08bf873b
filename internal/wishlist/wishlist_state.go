package wishlist

import "go-storefront/internal/storeapi"

// State tracks an item between the optimistic change and the backend's
// answer.
type State int

const (
	Synced State = iota
	PendingAdd
	PendingRemove
)

func (s State) String() string {
	switch s {
	case Synced:
		return "synced"
	case PendingAdd:
		return "pending_add"
	case PendingRemove:
		return "pending_remove"
	default:
		return "unknown"
	}
}

const placeholderPrefix = "tmp-"

type Item struct {
	ID          storeapi.ID
	ProductID   storeapi.ID
	ProductName string
	State       State
}

// Placeholder reports whether the item still carries a client-made id.
func (i Item) Placeholder() bool {
	return len(i.ID) > len(placeholderPrefix) && string(i.ID[:len(placeholderPrefix)]) == placeholderPrefix
}

func fromServer(w storeapi.WishlistItem) Item {
	return Item{
		ID:          w.ID,
		ProductID:   w.ProductID,
		ProductName: w.Name(),
		State:       Synced,
	}
}
