package domain

import (
	"context"

	"roguetester/internal/core/types/enums"
)

// Controller - функция принятия решений юнита.
// Decide возвращает ровно одну команду на ход. Игровой контроллер
// блокируется в Decide до прихода команды извне (единственная точка ожидания).
type Controller interface {
	Kind() enums.ControlKind
	Decide(ctx context.Context, u *Unit) (Command, error)
}

// StatChooser - контроллер сам выбирает характеристику при повышении уровня.
// Контроллеры без него качают случайную.
type StatChooser interface {
	ChooseStat(ctx context.Context, u *Unit) (Stat, error)
}

// DeathObserver - контроллер хочет знать о смерти своего юнита
// (игроку надо показать последний кадр).
type DeathObserver interface {
	OnDeath(u *Unit)
}
