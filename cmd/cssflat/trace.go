package main

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// setupTracing directs the traces of all csskit packages to w, filtered by
// level ("error", "info" or "debug"). An empty level leaves tracing off.
func setupTracing(level string, w io.Writer) tracing.Trace {
	if level == "" {
		return tracing.NoOpTrace()
	}
	tracer := gologadapter.New()
	tracer.SetOutput(w)
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	tracer.Debugf("tracing at level %s", tracer.GetTraceLevel())
	return tracer
}
