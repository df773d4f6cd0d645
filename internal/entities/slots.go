package entities

// Slot is one of the ten equipment attachment points
type Slot string

// Equipment slots
const (
	SlotMainHand Slot = "mainHand"
	SlotOffHand  Slot = "offHand"
	SlotChest    Slot = "chest"
	SlotBoots    Slot = "boots"
	SlotGloves   Slot = "gloves"
	SlotHeadgear Slot = "headgear"
	SlotCape     Slot = "cape"
	SlotNecklace Slot = "necklace"
	SlotRing     Slot = "ring"
	SlotOther    Slot = "other"
)

// AllSlots lists every slot, hands first
var AllSlots = []Slot{
	SlotMainHand, SlotOffHand, SlotChest, SlotBoots, SlotGloves,
	SlotHeadgear, SlotCape, SlotNecklace, SlotRing, SlotOther,
}

// Valid reports whether s names an equipment slot
func (s Slot) Valid() bool {
	for _, slot := range AllSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsHand reports whether s is the main-hand or off-hand slot
func (s Slot) IsHand() bool {
	return s == SlotMainHand || s == SlotOffHand
}

// EquippedSlots maps each slot to the id of the item occupying it.
// An empty string is an empty slot.
type EquippedSlots struct {
	MainHand string `json:"mainHand,omitempty" yaml:"mainHand,omitempty"`
	OffHand  string `json:"offHand,omitempty" yaml:"offHand,omitempty"`
	Chest    string `json:"chest,omitempty" yaml:"chest,omitempty"`
	Boots    string `json:"boots,omitempty" yaml:"boots,omitempty"`
	Gloves   string `json:"gloves,omitempty" yaml:"gloves,omitempty"`
	Headgear string `json:"headgear,omitempty" yaml:"headgear,omitempty"`
	Cape     string `json:"cape,omitempty" yaml:"cape,omitempty"`
	Necklace string `json:"necklace,omitempty" yaml:"necklace,omitempty"`
	Ring     string `json:"ring,omitempty" yaml:"ring,omitempty"`
	Other    string `json:"other,omitempty" yaml:"other,omitempty"`
}

// Get returns the item id in a slot
func (e EquippedSlots) Get(slot Slot) string {
	if p := e.ref(slot); p != nil {
		return *p
	}
	return ""
}

// Set places an item id in a slot; an empty id clears it
func (e *EquippedSlots) Set(slot Slot, itemID string) {
	if p := e.ref(slot); p != nil {
		*p = itemID
	}
}

// SlotsHolding returns every slot currently holding itemID
func (e EquippedSlots) SlotsHolding(itemID string) []Slot {
	if itemID == "" {
		return nil
	}
	var slots []Slot
	for _, slot := range AllSlots {
		if e.Get(slot) == itemID {
			slots = append(slots, slot)
		}
	}
	return slots
}

// ItemIDs returns the distinct ids of equipped items in slot order
func (e EquippedSlots) ItemIDs() []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, slot := range AllSlots {
		id := e.Get(slot)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (e *EquippedSlots) ref(slot Slot) *string {
	switch slot {
	case SlotMainHand:
		return &e.MainHand
	case SlotOffHand:
		return &e.OffHand
	case SlotChest:
		return &e.Chest
	case SlotBoots:
		return &e.Boots
	case SlotGloves:
		return &e.Gloves
	case SlotHeadgear:
		return &e.Headgear
	case SlotCape:
		return &e.Cape
	case SlotNecklace:
		return &e.Necklace
	case SlotRing:
		return &e.Ring
	case SlotOther:
		return &e.Other
	default:
		return nil
	}
}
