package domain

// LogRecord - запись игрового лога комнаты.
// Без позиции и без Global запись не увидит никто.
type LogRecord struct {
	Pos     Position
	HasPos  bool
	Global  bool
	Message string
}

// VisibleTo - правило фильтрации при выдаче лога наблюдателю.
func (r LogRecord) VisibleTo(u *Unit) bool {
	return r.Global || (r.HasPos && u.CanSee(r.Pos))
}

// Log добавляет запись в очередь комнаты.
func (r *Room) Log(rec LogRecord) {
	r.logs = append(r.logs, rec)
	if r.LogLimit > 0 && len(r.logs) > r.LogLimit {
		// Самые старые записи выпадают первыми
		r.logs = r.logs[len(r.logs)-r.LogLimit:]
	}
	if r.OnLog != nil {
		r.OnLog(r, rec)
	}
}

// LogAt - запись, привязанная к клетке.
func (r *Room) LogAt(pos Position, msg string) {
	r.Log(LogRecord{Pos: pos, HasPos: true, Message: msg})
}

// LogGlobal - запись, которую увидят все в комнате.
func (r *Room) LogGlobal(pos Position, msg string) {
	r.Log(LogRecord{Pos: pos, HasPos: true, Global: true, Message: msg})
}

// DrainLog забирает все накопленные записи.
func (r *Room) DrainLog() []LogRecord {
	out := r.logs
	r.logs = nil
	return out
}

// PendingLog - сколько записей ждет потребителя.
func (r *Room) PendingLog() int {
	return len(r.logs)
}
