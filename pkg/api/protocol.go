package api

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы сообщений сервера.
const (
	// ResponseUpdate - ход игрока, ждем команду.
	ResponseUpdate = "UPDATE"
	// ResponseLevelUp - повышение уровня, ждем выбор характеристики.
	ResponseLevelUp = "LEVEL_UP"
	// ResponseNotice - ответ на мета-команду (help, items). Ход не тратится.
	ResponseNotice = "NOTICE"
	// ResponseRejected - команда отклонена, ход не тратится.
	ResponseRejected = "REJECTED"
	// ResponseDead - последний кадр погибшего юнита.
	ResponseDead = "DEAD"
	// ResponseBye - симуляция закончилась.
	ResponseBye = "BYE"
)

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой "снимок" HUD конкретного юнита: то, что он видит и помнит.
// Отправляется каждый раз, когда наступает ход юнита, которым управляет клиент.
type ServerResponse struct {
	// Type тип сообщения (UPDATE, LEVEL_UP, NOTICE, REJECTED, DEAD, BYE).
	Type string `json:"type"`

	// Tick номер тика симуляции.
	Tick int `json:"tick"`

	// MyEntityID ID юнита, которым управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Name имя юнита.
	Name string `json:"name,omitempty"`

	// Room id комнаты, в которой стоит юнит.
	Room int `json:"room"`

	// Grid метаданные о размере карты комнаты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Vision - строки карты: видимое, запомненное и пробелы на месте неизведанного.
	Vision []string `json:"vision,omitempty"`

	// Stats характеристики юнита.
	Stats *StatsView `json:"stats,omitempty"`

	// Inventory имена предметов в инвентаре (индекс = номер для item/drop).
	Inventory []string `json:"inventory"`

	// Floor имена предметов на полу под юнитом (индекс = номер для take).
	Floor []string `json:"floor"`

	// Commands команды, доступные юниту в этот ход.
	Commands []string `json:"commands,omitempty"`

	// Logs новые сообщения, которые юнит мог увидеть с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`

	// Notice текст ответа на мета-команду или причина отказа.
	Notice []string `json:"notice,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// StatsView - кортеж характеристик для HUD.
type StatsView struct {
	Level     int  `json:"level"`
	Health    int  `json:"health"`
	HealthMax int  `json:"healthMax"`
	Intellect int  `json:"intellect"`
	Cunning   int  `json:"cunning"`
	Power     int  `json:"power"`
	PowerMax  int  `json:"powerMax"`
	KillCount int  `json:"killCount"`
	X         int  `json:"x"`
	Y         int  `json:"y"`
	IsDead    bool `json:"isDead"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Global    bool   `json:"global,omitempty"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// RoomSummary - краткое описание комнаты для /debug/rooms.
type RoomSummary struct {
	ID      int      `json:"id"`
	Width   int      `json:"w"`
	Height  int      `json:"h"`
	Units   []string `json:"units"` // в порядке ходов
	Objects int      `json:"objects"`
	Items   int      `json:"items"`
	Tick    int      `json:"tick"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID юнита, от имени которого выполняется действие.
	Token string `json:"token,omitempty"`

	// Command имя команды ("move", "attack", "look", ...) или выбор характеристики ("0".."3").
	Command string `json:"command"`

	// Args позиционные аргументы ("north", "2", ...).
	Args []string `json:"args,omitempty"`
}
