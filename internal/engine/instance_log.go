package engine

import (
	"roguetester/internal/domain"
	"roguetester/pkg/logger"

	"github.com/sirupsen/logrus"
)

// mirrorLog дублирует каждую запись лога комнаты в logrus.
func mirrorLog(r *domain.Room, rec domain.LogRecord) {
	fields := logrus.Fields{
		"component": "game_log",
		"room":      r.ID,
		"global":    rec.Global,
	}
	if rec.HasPos {
		fields["x"] = rec.Pos.X
		fields["y"] = rec.Pos.Y
	}
	logger.Log.WithFields(fields).Debug(rec.Message)
}
