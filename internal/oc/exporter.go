package oc

import (
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/Microsoft/settz/internal/log"
	"github.com/Microsoft/settz/internal/logfields"
)

const spanMessage = "Span"

var _errorCodeKey = logrus.ErrorKey + "Code"

// LogrusExporter is an OpenCensus `trace.Exporter` that exports
// `trace.SpanData` to logrus output.
type LogrusExporter struct{}

var _ trace.Exporter = &LogrusExporter{}

// ExportSpan writes `s` with its attributes, trace, span and parent span IDs
// and timings.
//
// The span is written at `logrus.InfoLevel` unless `s.Status.Code != 0`, in
// which case it is written at `logrus.ErrorLevel` with `s.Status.Message` as
// the error and the status code under "errorCode".
func (le *LogrusExporter) ExportSpan(s *trace.SpanData) {
	if s.DroppedAttributeCount > 0 {
		logrus.WithFields(logrus.Fields{
			logfields.Name:    s.Name,
			logfields.TraceID: s.TraceID.String(),
			logfields.SpanID:  s.SpanID.String(),
			"dropped":         s.DroppedAttributeCount,
			"maxAttributes":   len(s.Attributes),
		}).Warning("span had dropped attributes")
	}

	entry := logrus.WithFields(logrus.Fields(s.Attributes))
	// span fields are all strings, so copy them directly rather than through
	// entry.WithFields
	data := make(logrus.Fields, len(entry.Data)+9)
	for k, v := range entry.Data {
		data[k] = v
	}
	data[logfields.Name] = s.Name
	data[logfields.TraceID] = s.TraceID.String()
	data[logfields.SpanID] = s.SpanID.String()
	data[logfields.ParentSpanID] = s.ParentSpanID.String()
	data[logfields.StartTime] = log.FormatTime(s.StartTime)
	data[logfields.EndTime] = log.FormatTime(s.EndTime)
	data[logfields.Duration] = s.EndTime.Sub(s.StartTime).String()

	level := logrus.InfoLevel
	if s.Status.Code != 0 {
		level = logrus.ErrorLevel
		data[logrus.ErrorKey] = s.Status.Message

		if _, ok := data[_errorCodeKey]; !ok {
			data[_errorCodeKey] = s.Status.Code
		}
	}

	entry.Data = data
	entry.Time = s.StartTime
	entry.Log(level, spanMessage)
}
