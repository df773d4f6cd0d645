// Package engine turns stored character attributes into live game values:
// skill modifiers and checks, equipment slot assignment and armor class,
// hit point and mana progression, and ability and spell availability.
//
// Every function is a value transformation. Operations that change a
// character clone it first and return the new value, or a typed error with
// the input untouched. Only TotalArmorClass reaches outside the package, to
// resolve equipped items that are missing from the sheet.
package engine
