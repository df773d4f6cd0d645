package errors

// Reason names the domain failure kind behind an error. Codes say how a
// transport should treat a failure; reasons say what actually went wrong so
// callers can branch on it without parsing messages.
type Reason string

// Failure reasons
const (
	ReasonNone               Reason = ""
	ReasonNotFound           Reason = "NOT_FOUND"
	ReasonValidation         Reason = "VALIDATION"
	ReasonDuplicateKey       Reason = "DUPLICATE_KEY"
	ReasonUnknownSkill       Reason = "UNKNOWN_SKILL"
	ReasonUnknownBonusType   Reason = "UNKNOWN_BONUS_TYPE"
	ReasonItemNotInInventory Reason = "ITEM_NOT_IN_INVENTORY"
	ReasonItemNotEquipable   Reason = "ITEM_NOT_EQUIPABLE"
	ReasonItemNotEquipped    Reason = "ITEM_NOT_EQUIPPED"
	ReasonAmbiguousEquip     Reason = "AMBIGUOUS_EQUIP"
	ReasonMaxLevelReached    Reason = "MAX_LEVEL_REACHED"
	ReasonSpellCircleTooHigh Reason = "SPELL_CIRCLE_TOO_HIGH"
	ReasonSpellAlreadyKnown  Reason = "SPELL_ALREADY_KNOWN"
	ReasonSpellNotKnown      Reason = "SPELL_NOT_KNOWN"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}

// Code returns the error code a reason is reported under
func (r Reason) Code() Code {
	switch r {
	case ReasonNotFound:
		return CodeNotFound
	case ReasonValidation, ReasonUnknownSkill, ReasonUnknownBonusType:
		return CodeInvalidArgument
	case ReasonDuplicateKey:
		return CodeAlreadyExists
	case ReasonItemNotInInventory, ReasonItemNotEquipable, ReasonItemNotEquipped,
		ReasonAmbiguousEquip, ReasonMaxLevelReached, ReasonSpellCircleTooHigh,
		ReasonSpellAlreadyKnown, ReasonSpellNotKnown:
		return CodeFailedPrecondition
	default:
		return CodeInternal
	}
}

// Domain creates an error for a domain failure reason
func Domain(reason Reason, message string) *Error {
	return &Error{
		Code:    reason.Code(),
		Reason:  reason,
		Message: message,
	}
}

// Domainf creates an error for a domain failure reason with formatted message
func Domainf(reason Reason, format string, args ...any) *Error {
	return Domain(reason, sprintf(format, args...))
}
