package handlers

import (
	"fmt"

	"roguetester/pkg/api"
)

// Args - разбор позиционных аргументов команды в структуру.
type Args[T any] interface {
	*T
	Parse(args []string) error
}

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, args T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны аргументы (wait, enter)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithArgs берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя разбор и валидацию аргументов.
func WithArgs[T any, PT Args[T]](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw []string) (Result, error) {
		var args T

		// 1. Разбор аргументов
		if err := PT(&args).Parse(raw); err != nil {
			return Fail(ctx, fmt.Errorf("invalid arguments: %w", err))
		}

		// 2. Автоматическая валидация
		// Проверяем, реализует ли структура T интерфейс Validator
		if v, ok := any(args).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Fail(ctx, fmt.Errorf("validation failed: %w", err))
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, args)
	}
}

// WithoutArgs - обертка для команд без аргументов. Лишние аргументы игнорируются.
func WithoutArgs(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ []string) (Result, error) {
		return handler(ctx)
	}
}
