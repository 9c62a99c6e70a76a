package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"roguetester/internal/engine"
	"roguetester/pkg/api"
	"roguetester/pkg/logger"
)

// printLoop печатает кадры героя, пока хаб не закроет канал.
func printLoop(ctx context.Context, w io.Writer, updates <-chan api.ServerResponse) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case resp, ok := <-updates:
			if !ok {
				return nil
			}
			if err := printFrame(w, resp); err != nil {
				return err
			}
		}
	}
}

// printFrame - текстовый HUD: карта, строка характеристик, лог и подсказки.
func printFrame(w io.Writer, resp api.ServerResponse) error {
	var b strings.Builder

	switch resp.Type {
	case api.ResponseUpdate, api.ResponseDead:
		fmt.Fprintf(&b, "--- tick %d, room %d ---\n", resp.Tick, resp.Room)
		for _, row := range resp.Vision {
			b.WriteString(row)
			b.WriteByte('\n')
		}
		if resp.Stats != nil {
			b.WriteString(engine.StatsLine(resp.Stats))
			b.WriteByte('\n')
		}
		if len(resp.Floor) > 0 {
			fmt.Fprintf(&b, "на полу: %s\n", strings.Join(resp.Floor, ", "))
		}
	}

	for _, entry := range resp.Logs {
		b.WriteString(entry.Text)
		b.WriteByte('\n')
	}
	for _, line := range resp.Notice {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	switch resp.Type {
	case api.ResponseUpdate, api.ResponseNotice, api.ResponseRejected:
		b.WriteString("> ")
	case api.ResponseLevelUp:
		b.WriteString("0-здоровье 1-интеллект 2-хитрость 3-сила > ")
	case api.ResponseDead:
		b.WriteString("Вы погибли.\n")
	case api.ResponseBye:
		b.WriteString("Пока!\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// readLoop передает строки из r в очередь ввода героя. Конец ввода - выход.
func readLoop(ctx context.Context, r io.Reader, input *engine.ChannelInput) {
	defer input.Close()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := input.PushLine(ctx, line); err != nil {
			return
		}
	}
	if err := sc.Err(); err != nil {
		logger.Log.WithError(err).Warn("Console input failed")
	}
}
