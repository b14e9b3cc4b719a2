package server

import (
	"encoding/json"
	"net/http"

	"crawl-server/internal/engine"
)

// DebugHandler exposes the engine's internal state. Read endpoints do
// not lock the game loop; they are for local inspection only.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes registers the debug endpoints.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/god", h.handleGodMode)
}

// /debug/state - run summary.
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	g := h.Service.Game

	type StateSummary struct {
		Seed        int64  `json:"seed"`
		Turn        int    `json:"turn"`
		Depth       int    `json:"depth"`
		State       string `json:"state"`
		GodMode     bool   `json:"godMode"`
		EntityCount int    `json:"entityCount"`
		PendingMsgs int    `json:"pendingMsgs"`
	}

	writeJSON(w, StateSummary{
		Seed:        g.Seed,
		Turn:        g.Settings.TurnCount,
		Depth:       g.Settings.Depth,
		State:       g.Settings.State.String(),
		GodMode:     g.Settings.GodMode,
		EntityCount: g.Data.Entities.Len(),
		PendingMsgs: g.Log.Pending(),
	})
}

// /debug/entities - full dump of every entity, hidden state included.
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	ents := h.Service.Game.Data.Entities

	type EntityDump struct {
		ID       string `json:"id"`
		Kind     string `json:"kind"`
		Name     string `json:"name"`
		X        int    `json:"x"`
		Y        int    `json:"y"`
		Alive    bool   `json:"alive"`
		HP       int    `json:"hp,omitempty"`
		Behavior string `json:"behavior,omitempty"`
	}

	var dump []EntityDump
	for _, id := range ents.IDs() {
		e := EntityDump{
			ID:    id.String(),
			Kind:  ents.Kind[id].String(),
			Name:  ents.Name[id],
			X:     ents.Pos[id].X,
			Y:     ents.Pos[id].Y,
			Alive: ents.Alive[id],
		}
		if fighter, ok := ents.Fighter[id]; ok {
			e.HP = fighter.HP
		}
		if behavior, ok := ents.Behavior[id]; ok {
			e.Behavior = behavior.String()
		}
		dump = append(dump, e)
	}

	writeJSON(w, dump)
}

// /debug/god?enabled=true - toggle player invulnerability.
func (h *DebugHandler) handleGodMode(w http.ResponseWriter, r *http.Request) {
	enabled := r.URL.Query().Get("enabled") == "true"
	h.Service.Game.SetGodMode(enabled)
	writeJSON(w, map[string]bool{"godMode": enabled})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// nil (for example an empty dump) encodes as [] rather than null.
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
