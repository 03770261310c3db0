package logger

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

type adapterLevel int

const (
	adapterLevelInfo adapterLevel = iota
	adapterLevelWarn
	adapterLevelError
)

// writerAdapter implements io.Writer and forwards each written line to an Interface.
type writerAdapter struct {
	l     Interface
	level adapterLevel
}

func (w writerAdapter) Write(p []byte) (n int, err error) {
	msg := string(bytes.TrimRight(p, "\r\n"))

	switch w.level {
	case adapterLevelInfo:
		w.l.Info(msg)
	case adapterLevelWarn:
		w.l.Warn(msg)
	case adapterLevelError:
		w.l.Error(msg)
	}

	return len(p), nil
}

// SetupStdLog routes the standard library log output through l.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(writerAdapter{l: l, level: adapterLevelWarn})
}

// SetupGin routes Gin's debug and error output through l.
func SetupGin(l Interface) {
	gin.DefaultWriter = writerAdapter{l: l, level: adapterLevelInfo}
	gin.DefaultErrorWriter = writerAdapter{l: l, level: adapterLevelError}
}
