package entities

// Game-wide bounds. Stored values are validated against these and the
// engine never hardcodes them.
const (
	MinStatValue = 1
	MaxStatValue = 10

	MinLevel = 1
	MaxLevel = 10

	DefaultBaseAC    = 10
	DefaultBaseSpeed = 30

	// MaxStatBonus bounds STR/DEX/INT/CHA bonuses granted by catalog entries
	MaxStatBonus = 3
	// MinSpeedBonus caps how slow a race or item can make a character
	MinSpeedBonus = -20

	MaxSpellCircle = 5

	maxCharacterNameLength = 100
	maxBackstoryLength     = 5000
	maxCatalogNameLength   = 50
	maxItemNameLength      = 100
	maxDescriptionLength   = 2000
	maxTagLength           = 30
)
