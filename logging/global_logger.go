package logging

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// logsLayout is the timestamp format used by the text formatter
const logsLayout = "2006-01-02 15:04:05"

// ConfigWarn may be filled during config loading, before the logger is
// initialized. It is logged on InitGlobalLogger call.
var ConfigWarn string

// InitGlobalLogger initializes main logger
func InitGlobalLogger(levelStr string) error {
	level, err := log.ParseLevel(levelStr)
	if err == nil {
		log.SetLevel(level)
	} else {
		Error(err)
	}
	if ConfigWarn != "" {
		Warn(ConfigWarn)
	}
	return nil
}

func SetJsonFormatter() {
	log.SetFormatter(&log.JSONFormatter{})
}

func SetTextFormatter() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: logsLayout,
	})
}

func SystemErrorf(format string, v ...any) {
	SystemError(fmt.Sprintf(format, v...))
}

func SystemError(v ...any) {
	msg := []any{"System error:"}
	msg = append(msg, v...)
	Error(msg...)
}

func Errorf(format string, v ...any) {
	log.Errorf(format, v...)
}

func Error(v ...any) {
	log.Errorln(v...)
}

func Infof(format string, v ...any) {
	log.Infof(format, v...)
}

func Info(v ...any) {
	log.Infoln(v...)
}

func Debugf(format string, v ...any) {
	log.Debugf(format, v...)
}

func Debug(v ...any) {
	log.Debug(v...)
}

func Warnf(format string, v ...any) {
	log.Warnf(format, v...)
}

func Warn(v ...any) {
	log.Warnln(v...)
}

func Fatal(v ...any) {
	log.Fatal(v...)
}

func Fatalf(format string, v ...any) {
	log.Fatalf(format, v...)
}
