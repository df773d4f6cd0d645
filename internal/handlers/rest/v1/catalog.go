package v1

import (
	"net/http"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/services/catalog"
)

// catalogHandler serves CRUD routes for one catalog kind
type catalogHandler[T entities.CatalogEntry] struct {
	service catalog.Service[T]
}

func registerCatalog[T entities.CatalogEntry](mux *http.ServeMux, path string, service catalog.Service[T]) {
	h := &catalogHandler[T]{service: service}
	base := Prefix + "/" + path

	mux.HandleFunc("GET "+base, h.list)
	mux.HandleFunc("POST "+base, h.create)
	mux.HandleFunc("GET "+base+"/{id}", h.get)
	mux.HandleFunc("PUT "+base+"/{id}", h.update)
	mux.HandleFunc("DELETE "+base+"/{id}", h.delete)
}

func (h *catalogHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.List(r.Context(), &catalog.ListInput{NamePrefix: r.URL.Query().Get("name")})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeList(w, out.Entries)
}

func (h *catalogHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Get(r.Context(), &catalog.GetInput{ID: r.PathValue("id")})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Entry)
}

func (h *catalogHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	var entry T
	if err := decodeJSON(r, &entry); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.service.Create(r.Context(), &catalog.CreateInput[T]{Entry: entry})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusCreated, out.Entry)
}

func (h *catalogHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	var entry T
	if err := decodeJSON(r, &entry); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.service.Update(r.Context(), &catalog.UpdateInput[T]{
		ID:    r.PathValue("id"),
		Entry: entry,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Entry)
}

func (h *catalogHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Delete(r.Context(), &catalog.DeleteInput{ID: r.PathValue("id")})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Entry)
}

// GenerateBackground handles GET /origins/{id}/background
func (h *Handler) GenerateBackground(w http.ResponseWriter, r *http.Request) {
	out, err := h.backgrounds.GenerateBackground(r.Context(), &catalog.GenerateBackgroundInput{
		OriginID: r.PathValue("id"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeData(w, http.StatusOK, out.Background)
}
