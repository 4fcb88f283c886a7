package logger

import (
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	entry  *logrus.Logger
	active bool
}

var MFTAnalyzerlogger Logger

func InitializeLogger(active bool, logfilename string) {
	if !active {
		MFTAnalyzerlogger = Logger{active: false}
		return
	}

	file, err := os.OpenFile(logfilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatal(err)
	}

	l := logrus.New()
	l.SetOutput(file)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05",
	})
	MFTAnalyzerlogger = Logger{entry: l, active: active}
}

// SetOutput redirects log output, used by tests.
func (logger *Logger) SetOutput(w io.Writer) {
	if logger.entry != nil {
		logger.entry.SetOutput(w)
	}
}

func (logger Logger) Info(msg string) {
	if logger.active {
		logger.entry.Info(msg)
	}
}

func (logger Logger) Warning(msg string) {
	if logger.active {
		logger.entry.Warning(msg)
	}
}

func (logger Logger) Error(msg any) {
	if logger.active {
		logger.entry.Error(msg)
	}
}
