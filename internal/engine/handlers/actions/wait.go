package actions

import (
	"fmt"

	"roguetester/internal/engine/handlers"
)

// HandleWait - пропустить ход.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Info(fmt.Sprintf("%s стоит на месте.", ctx.Actor.Name)), nil
}

// HandleProcrastinate - тактическая прокрастинация. Тот же пропуск хода.
func HandleProcrastinate(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Info(fmt.Sprintf("%s прокрастинирует", ctx.Actor.Name)), nil
}

// HandleIdle - молча ничего не делать.
func HandleIdle(handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
