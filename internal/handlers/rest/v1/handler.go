// Package v1 serves the character sheet REST API under /api/v1
package v1

import (
	"context"
	"net/http"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/services/catalog"
	"github.com/KirkDiggler/madking-api/internal/services/character"
)

// Prefix is the path every API route lives under
const Prefix = "/api/v1"

// HandlerConfig holds dependencies for the REST handler
type HandlerConfig struct {
	CharacterService  character.Service
	RaceService       catalog.Service[*entities.Race]
	ClassService      catalog.Service[*entities.Class]
	OriginService     catalog.Service[*entities.Origin]
	ItemService       catalog.Service[*entities.Item]
	SpellService      catalog.Service[*entities.Spell]
	BackgroundService catalog.BackgroundService

	// HealthCheck is optional and backs /healthz
	HealthCheck func(ctx context.Context) error
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.RaceService == nil {
		vb.RequiredField("RaceService")
	}
	if c.ClassService == nil {
		vb.RequiredField("ClassService")
	}
	if c.OriginService == nil {
		vb.RequiredField("OriginService")
	}
	if c.ItemService == nil {
		vb.RequiredField("ItemService")
	}
	if c.SpellService == nil {
		vb.RequiredField("SpellService")
	}
	if c.BackgroundService == nil {
		vb.RequiredField("BackgroundService")
	}

	return vb.Build()
}

// Handler implements the REST API
type Handler struct {
	characters  character.Service
	races       catalog.Service[*entities.Race]
	classes     catalog.Service[*entities.Class]
	origins     catalog.Service[*entities.Origin]
	items       catalog.Service[*entities.Item]
	spells      catalog.Service[*entities.Spell]
	backgrounds catalog.BackgroundService
	healthCheck func(ctx context.Context) error
}

// NewHandler creates a new REST handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		characters:  cfg.CharacterService,
		races:       cfg.RaceService,
		classes:     cfg.ClassService,
		origins:     cfg.OriginService,
		items:       cfg.ItemService,
		spells:      cfg.SpellService,
		backgrounds: cfg.BackgroundService,
		healthCheck: cfg.HealthCheck,
	}, nil
}

// Routes returns the API mux wrapped in request logging and panic recovery
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return LogRequests(Recover(mux))
}

// RegisterRoutes wires every API route into mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Health)

	mux.HandleFunc("GET "+Prefix+"/characters", h.ListCharacters)
	mux.HandleFunc("POST "+Prefix+"/characters", h.CreateCharacter)
	mux.HandleFunc("GET "+Prefix+"/characters/{id}", h.GetCharacter)
	mux.HandleFunc("PUT "+Prefix+"/characters/{id}", h.UpdateCharacter)
	mux.HandleFunc("DELETE "+Prefix+"/characters/{id}", h.DeleteCharacter)
	mux.HandleFunc("POST "+Prefix+"/characters/{id}/level-up", h.LevelUp)
	mux.HandleFunc("POST "+Prefix+"/characters/{id}/spells/{spellId}", h.AddSpell)
	mux.HandleFunc("DELETE "+Prefix+"/characters/{id}/spells/{spellId}", h.ForgetSpell)
	mux.HandleFunc("POST "+Prefix+"/characters/{id}/items/{itemId}", h.AddItem)
	mux.HandleFunc("DELETE "+Prefix+"/characters/{id}/items/{itemId}", h.RemoveItem)
	mux.HandleFunc("POST "+Prefix+"/characters/{id}/equip/{itemId}", h.EquipItem)
	mux.HandleFunc("POST "+Prefix+"/characters/{id}/unequip/{itemId}", h.UnequipItem)
	mux.HandleFunc("POST "+Prefix+"/characters/{id}/skill-checks/{skill}", h.RollSkillCheck)

	registerCatalog(mux, "races", h.races)
	registerCatalog(mux, "classes", h.classes)
	registerCatalog(mux, "origins", h.origins)
	registerCatalog(mux, "items", h.items)
	registerCatalog(mux, "spells", h.spells)
	mux.HandleFunc("GET "+Prefix+"/origins/{id}/background", h.GenerateBackground)
}

// Health reports whether the service and its store are reachable
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.healthCheck != nil {
		if err := h.healthCheck(r.Context()); err != nil {
			writeError(r.Context(), w, errors.WrapWithCode(err, errors.CodeUnavailable, "store unavailable"))
			return
		}
	}
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
