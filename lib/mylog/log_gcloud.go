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
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGloudLogger
	}
}

type structuredLogger struct {
	componentName string
	out           *logrus.Logger
}

func newGloudLogger(componentName string) Logger {
	return newGcloudLoggerTo(componentName, os.Stdout)
}

func newGcloudLoggerTo(componentName string, w io.Writer) Logger {
	out := logrus.New()
	out.SetOutput(w)
	out.SetLevel(level)
	// Field names as expected by Cloud Logging; the timestamp is added when shipping logs.
	out.SetFormatter(&logrus.JSONFormatter{
		DisableTimestamp: true,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return structuredLogger{
		componentName: componentName,
		out:           out,
	}
}

func (l structuredLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fields := logrus.Fields{
		"component": l.componentName,
		"labels":    map[string]string{"aggregate": traceLabel},
	}
	if trace := mycontext.TraceFromContext(ctx); trace != "" {
		fields["logging.googleapis.com/trace"] = trace
	}
	l.out.WithFields(fields).Log(severity.logrusLevel(), l.componentName+":"+fmt.Sprintf(format, a...))
}
