package v1

import (
	"net/http"

	"github.com/KirkDiggler/madking-api/internal/engine"
	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/services/character"
)

// characterView is a character with its derived overlay alongside
type characterView struct {
	*entities.Character
	Computed *engine.Computed `json:"computed"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type equipRequest struct {
	PreferredSlot entities.Slot `json:"preferredSlot"`
}

// ListCharacters handles GET /characters
func (h *Handler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.ListCharacters(r.Context(), &character.ListCharactersInput{
		NamePrefix: r.URL.Query().Get("name"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeList(w, out.Characters)
}

// GetCharacter handles GET /characters/{id}. ?computed=true adds the
// derived overlay.
func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	withComputed := r.URL.Query().Get("computed") == "true"

	out, err := h.characters.GetCharacter(r.Context(), &character.GetCharacterInput{
		CharacterID:  r.PathValue("id"),
		WithComputed: withComputed,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if withComputed {
		writeData(w, http.StatusOK, characterView{Character: out.Character, Computed: out.Computed})
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// CreateCharacter handles POST /characters
func (h *Handler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	var c entities.Character
	if err := decodeJSON(r, &c); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.characters.CreateCharacter(r.Context(), &character.CreateCharacterInput{Character: &c})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusCreated, out.Character)
}

// UpdateCharacter handles PUT /characters/{id}
func (h *Handler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	var update entities.CharacterUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.characters.UpdateCharacter(r.Context(), &character.UpdateCharacterInput{
		CharacterID: r.PathValue("id"),
		Update:      &update,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// DeleteCharacter handles DELETE /characters/{id}
func (h *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.DeleteCharacter(r.Context(), &character.DeleteCharacterInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// LevelUp handles POST /characters/{id}/level-up
func (h *Handler) LevelUp(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.LevelUp(r.Context(), &character.LevelUpInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// AddSpell handles POST /characters/{id}/spells/{spellId}
func (h *Handler) AddSpell(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.AddSpell(r.Context(), &character.AddSpellInput{
		CharacterID: r.PathValue("id"),
		SpellID:     r.PathValue("spellId"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// ForgetSpell handles DELETE /characters/{id}/spells/{spellId}
func (h *Handler) ForgetSpell(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.ForgetSpell(r.Context(), &character.ForgetSpellInput{
		CharacterID: r.PathValue("id"),
		SpellID:     r.PathValue("spellId"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// AddItem handles POST /characters/{id}/items/{itemId}
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.characters.AddItem(r.Context(), &character.AddItemInput{
		CharacterID: r.PathValue("id"),
		ItemID:      r.PathValue("itemId"),
		Quantity:    req.Quantity,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// RemoveItem handles DELETE /characters/{id}/items/{itemId}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.characters.RemoveItem(r.Context(), &character.RemoveItemInput{
		CharacterID: r.PathValue("id"),
		ItemID:      r.PathValue("itemId"),
		Quantity:    req.Quantity,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// EquipItem handles POST /characters/{id}/equip/{itemId}
func (h *Handler) EquipItem(w http.ResponseWriter, r *http.Request) {
	var req equipRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.characters.EquipItem(r.Context(), &character.EquipItemInput{
		CharacterID:   r.PathValue("id"),
		ItemID:        r.PathValue("itemId"),
		PreferredSlot: req.PreferredSlot,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// UnequipItem handles POST /characters/{id}/unequip/{itemId}
func (h *Handler) UnequipItem(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.UnequipItem(r.Context(), &character.UnequipItemInput{
		CharacterID: r.PathValue("id"),
		ItemID:      r.PathValue("itemId"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Character)
}

// RollSkillCheck handles POST /characters/{id}/skill-checks/{skill}
func (h *Handler) RollSkillCheck(w http.ResponseWriter, r *http.Request) {
	out, err := h.characters.RollSkillCheck(r.Context(), &character.RollSkillCheckInput{
		CharacterID: r.PathValue("id"),
		Skill:       r.PathValue("skill"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Check)
}
