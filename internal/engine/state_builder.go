package engine

import (
	"fmt"
	"strings"
	"time"

	"roguetester/internal/domain"
	"roguetester/internal/systems"
	"roguetester/pkg/api"
)

// BuildState создает персональный "снимок" HUD для юнита-наблюдателя
// и забирает накопленный лог комнаты: записи, которые юнит не видит, пропадают.
func BuildState(u *domain.Unit, kind string, tick int, notice []string) api.ServerResponse {
	resp := api.ServerResponse{
		Type:       kind,
		Tick:       tick,
		MyEntityID: u.ID.Token(),
		Name:       u.Name,
		Stats:      statsView(u),
		Inventory:  itemNames(u.Inventory.Items()),
		Floor:      []string{},
		Commands:   u.Caps.Names(u),
		Notice:     notice,
	}

	room := u.Room
	if room == nil {
		return resp
	}
	resp.Room = room.ID
	resp.Grid = &api.GridMeta{Width: room.Width, Height: room.Height}
	resp.Vision = VisionRows(u)
	resp.Floor = itemNames(room.FloorItems(u.Pos))
	resp.Logs = drainLogsFor(u)
	return resp
}

// VisionRows - карта так, как юнит ее видит и помнит.
// Видимое: юнит, иначе объект, иначе верхний предмет на полу, иначе тайл.
// Запомненное: стена, затем юнит, затем объект. Неизведанное - пробел.
func VisionRows(u *domain.Unit) []string {
	room := u.Room
	memory := systems.Recall(u)

	rows := make([]string, room.Height)
	var b strings.Builder
	for y := 0; y < room.Height; y++ {
		b.Reset()
		for x := 0; x < room.Width; x++ {
			b.WriteRune(visionRune(u, memory, domain.Position{X: x, Y: y}))
		}
		rows[y] = b.String()
	}
	return rows
}

func visionRune(u *domain.Unit, memory *domain.Recollection, pos domain.Position) rune {
	room := u.Room
	if u.CanSee(pos) {
		if unit := room.UnitAt(pos); unit != nil {
			return unit.Skin.Rune()
		}
		if obj := room.ObjectAt(pos); obj != nil {
			return obj.Props().Skin.Rune()
		}
		if items := room.FloorItems(pos); len(items) > 0 {
			return items[len(items)-1].Props().Skin.Rune()
		}
		return room.Tile(pos)
	}

	if memory.Walls.Has(pos) {
		return room.Tile(pos)
	}
	if snap, ok := memory.Units[pos]; ok {
		return snap.Skin.Rune()
	}
	if snap, ok := memory.Objects[pos]; ok {
		return snap.Skin.Rune()
	}
	return ' '
}

func statsView(u *domain.Unit) *api.StatsView {
	s := u.Stats
	return &api.StatsView{
		Level:     s.Level,
		Health:    s.Health,
		HealthMax: s.HealthMax,
		Intellect: s.Intellect,
		Cunning:   s.Cunning,
		Power:     s.Power,
		PowerMax:  s.PowerMax,
		KillCount: s.KillCount,
		X:         u.Pos.X,
		Y:         u.Pos.Y,
		IsDead:    u.Dead,
	}
}

func itemNames(items []domain.Item) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Props().Name)
	}
	return names
}

// drainLogsFor забирает лог комнаты и оставляет то, что юнит видит, и глобальные записи.
func drainLogsFor(u *domain.Unit) []api.LogEntry {
	records := u.Room.DrainLog()
	now := time.Now()

	var out []api.LogEntry
	for i, rec := range records {
		if !rec.VisibleTo(u) {
			continue
		}
		out = append(out, api.LogEntry{
			ID:        fmt.Sprintf("%d_%d_%d", u.Room.ID, now.UnixNano(), i),
			Text:      rec.Message,
			Global:    rec.Global,
			Timestamp: now.UnixMilli(),
		})
	}
	return out
}

// StatsLine - строка характеристик для консоли.
func StatsLine(s *api.StatsView) string {
	return fmt.Sprintf("Ур. %d, ПЗ: %d/%d, И: %d, Х: %d, Э: %d/%d, xp: %d   [%d, %d]",
		s.Level, s.Health, s.HealthMax, s.Intellect, s.Cunning, s.Power, s.PowerMax, s.KillCount, s.X, s.Y)
}
