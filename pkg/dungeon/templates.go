package dungeon

// ItemTags - что генератор раскладывает по полу.
// Гранат меньше, чем еды: тег повторяется в таблице столько раз, каков его вес.
var ItemTags = []string{
	TagFoo, TagFoo, TagFoo,
	TagBook, TagBook,
	TagGrenade,
}

// Population - сколько чего поселить в сгенерированную комнату.
type Population struct {
	Bugs       int
	BugLevel   int
	Owners     int
	OwnerLevel int
	Items      int
	Coffee     int
	Games      int
}

// Generate строит комнату с населением одним вызовом.
func (b *LevelBuilder) Generate(rooms int, up, down bool, pop Population) (*Level, []Record) {
	return b.WithRooms(rooms).
		PlaceExits(up, down).
		SpawnMachines(pop.Coffee, pop.Games).
		SpawnItems(pop.Items).
		SpawnOwners(pop.Owners, pop.OwnerLevel).
		SpawnBugs(pop.Bugs, pop.BugLevel).
		Build()
}
