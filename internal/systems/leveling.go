package systems

import (
	"context"
	"fmt"

	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LevelUp повышает уровень, пока счетчик убийств дотягивает до следующего
// порога (2^(уровень+1)). Характеристику выбирает StatChooser контроллера,
// остальным она достается случайно. Неверный выбор игрока переспрашивается.
// После каждого уровня сообщается о новых открывшихся командах.
func LevelUp(ctx context.Context, u *domain.Unit, rng domain.Roller) error {
	for !u.Dead && u.Stats.KillCount >= u.Stats.NextLevelKills() {
		known := make(map[string]bool)
		for _, name := range u.Caps.Names(u) {
			known[name] = true
		}

		if err := levelOnce(ctx, u, rng); err != nil {
			return err
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "leveling",
			"unit":      u.Name,
			"level":     u.Stats.Level,
			"kills":     u.Stats.KillCount,
		}).Info("Level up")

		for _, name := range u.Caps.Names(u) {
			if !known[name] {
				u.Log(u.Name + " получает новую способность: " + name + "!")
			}
		}
	}
	return nil
}

func levelOnce(ctx context.Context, u *domain.Unit, rng domain.Roller) error {
	chooser, interactive := u.Controller.(domain.StatChooser)
	if !interactive {
		u.Archetype.LevelUp(u, domain.RandomStat(rng))
		return nil
	}

	for {
		stat, err := chooser.ChooseStat(ctx, u)
		if err != nil {
			return fmt.Errorf("choose stat for %s: %w", u.Name, err)
		}
		if u.Archetype.LevelUp(u, stat) {
			return nil
		}
	}
}
