package types

import (
	"fmt"
	"strconv"
)

// EntityID - 64-битный идентификатор юнита.
//
// Формат битов (от старших к младшим):
//
//	[ Kind (8) | Reserved (24) | Seq (32) ]
//
// Seq выдается счетчиком симуляции (domain.World), поэтому при одинаковом
// сиде идентификаторы совпадают между запусками.
type EntityID uint64

// NilEntityID - отсутствие юнита.
const NilEntityID EntityID = 0

const (
	bitsSeq  = 32
	bitsKind = 8

	shiftKind = 56

	maskSeq  = (1 << bitsSeq) - 1
	maskKind = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID из вида юнита и порядкового номера.
func PackEntityID(kind uint8, seq uint32) EntityID {
	return EntityID(uint64(kind)<<shiftKind | uint64(seq))
}

// Seq возвращает порядковый номер.
func (id EntityID) Seq() uint32 {
	return uint32(id & maskSeq)
}

// Kind возвращает вид юнита (enums.UnitKind).
func (id EntityID) Kind() uint8 {
	return uint8((id >> shiftKind) & maskKind)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String - для логов: "[kind=1 seq=3]"
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[kind=%d seq=%d]", id.Kind(), id.Seq())
}

// Token - строковое представление для клиента (ClientCommand.Token).
func (id EntityID) Token() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseEntityID разбирает токен клиента. Пустая строка - NilEntityID.
func ParseEntityID(s string) (EntityID, error) {
	if s == "" {
		return NilEntityID, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilEntityID, fmt.Errorf("parse entity id %q: %w", s, err)
	}
	return EntityID(v), nil
}

// MarshalJSON пишет ID строкой: JS не умеет в uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.Token() + `"`), nil
}

// UnmarshalJSON принимает и строку, и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := ParseEntityID(s)
	if err != nil {
		return err
	}
	*id = v
	return nil
}
