package mylog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/MarcGrol/wfpwidget/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
	out           *logrus.Logger
}

func newStandardLogger(componentName string) Logger {
	return newStandardLoggerTo(componentName, os.Stderr)
}

func newStandardLoggerTo(componentName string, w io.Writer) Logger {
	out := logrus.New()
	out.SetOutput(w)
	out.SetLevel(level)
	out.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return standardLogger{
		componentName: componentName,
		out:           out,
	}
}

func (l standardLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fields := logrus.Fields{
		"component": l.componentName,
	}
	if traceLabel != "" {
		fields["label"] = traceLabel
	}
	if trace := mycontext.TraceFromContext(ctx); trace != "" {
		fields["trace"] = trace
	}
	l.out.WithFields(fields).Log(severity.logrusLevel(), fmt.Sprintf(format, a...))
}
