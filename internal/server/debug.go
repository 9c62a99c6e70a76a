package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"roguetester/internal/engine"
	"roguetester/pkg/api"
)

// DebugHandler отдает снимки комнат, которые публикует цикл симуляции.
// Сам мир отсюда не трогается: он принадлежит горутине симуляции.
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/rooms", h.handleListRooms)
	mux.HandleFunc("/debug/room", h.handleRoom)
}

// /debug/rooms - все комнаты: размер, юниты в порядке хода, объекты, предметы
func (h *DebugHandler) handleListRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.Service.RoomSummaries())
}

// /debug/room?id=1 - одна комната
func (h *DebugHandler) handleRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "bad room id", http.StatusBadRequest)
		return
	}

	for _, room := range h.Service.RoomSummaries() {
		if room.ID == id {
			writeJSON(w, room)
			return
		}
	}
	http.Error(w, "room not found", http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой список - [], а не null
	if rooms, ok := data.([]api.RoomSummary); ok && rooms == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}
