package domain

import "fmt"

// Predicate - условие доступности команды. Проверяется заново каждый ход.
type Predicate func(u *Unit) bool

// Always - команда доступна всегда.
func Always(*Unit) bool { return true }

// MinLevel - команда открывается с уровня n.
func MinLevel(n int) Predicate {
	return func(u *Unit) bool { return u.Stats.Level >= n }
}

// Capability - строка таблицы возможностей: имя команды, обработчик, условие.
type Capability struct {
	Name      string
	Action    ActionType
	Help      string
	Available Predicate
}

// Capabilities - упорядоченная таблица возможностей юнита.
// Строится при создании юнита и дальше не меняется.
type Capabilities []Capability

// With добавляет строку или заменяет строку с тем же именем (на ее месте).
func (c Capabilities) With(cp Capability) Capabilities {
	if cp.Available == nil {
		cp.Available = Always
	}
	out := make(Capabilities, len(c), len(c)+1)
	copy(out, c)
	for i := range out {
		if out[i].Name == cp.Name {
			out[i] = cp
			return out
		}
	}
	return append(out, cp)
}

// Names - имена команд, доступных юниту сейчас, в порядке таблицы.
func (c Capabilities) Names(u *Unit) []string {
	var out []string
	for _, cp := range c {
		if cp.Available(u) {
			out = append(out, cp.Name)
		}
	}
	return out
}

// Available - доступные сейчас строки таблицы.
func (c Capabilities) Available(u *Unit) []Capability {
	var out []Capability
	for _, cp := range c {
		if cp.Available(u) {
			out = append(out, cp)
		}
	}
	return out
}

// Lookup ищет доступную команду по имени.
func (c Capabilities) Lookup(name string, u *Unit) (Capability, error) {
	for _, cp := range c {
		if cp.Name != name {
			continue
		}
		if !cp.Available(u) {
			return Capability{}, fmt.Errorf("%w: %s", ErrUnavailableCommand, name)
		}
		return cp, nil
	}
	return Capability{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}
