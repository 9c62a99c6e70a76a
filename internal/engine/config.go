package engine

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно единственного генератора случайных чисел симуляции.
	// 0 - взять от текущего времени.
	Seed int64

	// MaxPathIterations ограничивает поиск пути ИИ. 0 - без ограничения.
	MaxPathIterations int
	// LogLimit - сколько записей держит очередь лога комнаты. 0 - без ограничения.
	LogLimit int

	// Герой
	HeroName  string
	HeroLevel int
}

// Значения по умолчанию.
const (
	DefaultHeroName = "Тестер"
	DefaultLogLimit = 256
)

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		HeroName: DefaultHeroName,
		LogLimit: DefaultLogLimit,
	}
}
