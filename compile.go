package carreltex

import (
	"github.com/boan-anbo/carreltex-sub000/dvi"
	"github.com/boan-anbo/carreltex-sub000/inputexpand"
	"github.com/boan-anbo/carreltex-sub000/internal/clog"
	"github.com/boan-anbo/carreltex-sub000/internal/invariant"
	"github.com/boan-anbo/carreltex-sub000/macro"
	"github.com/boan-anbo/carreltex-sub000/mount"
	"github.com/boan-anbo/carreltex-sub000/reason"
	"github.com/boan-anbo/carreltex-sub000/render"
	"github.com/boan-anbo/carreltex-sub000/stats"
	"github.com/boan-anbo/carreltex-sub000/tokenizer"
)

const (
	minMaxLogBytes = 1
	maxMaxLogBytes = 1_048_576

	notImplementedLogPrefix = "NOT_IMPLEMENTED: tex-engine compile pipeline is not wired yet"
	inputTraceLogPrefix     = "\nINPUT_TRACE_V0:"
)

// Status is the three-way compile outcome.
type Status int

const (
	Ok Status = iota
	InvalidInput
	NotImplemented
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "OK"
	case InvalidInput:
		return "INVALID_INPUT"
	case NotImplemented:
		return "NOT_IMPLEMENTED"
	default:
		return "UNKNOWN"
	}
}

// Request configures one compile call: the entrypoint path (must be
// "main.tex"), a reproducibility epoch (must be nonzero), and the log
// truncation cap (must be in [1, 1048576]).
type Request struct {
	Entrypoint      string
	SourceDateEpoch uint64
	MaxLogBytes     int
}

// DefaultRequest is the request CompileMain uses.
func DefaultRequest() Request {
	return Request{Entrypoint: "main.tex", SourceDateEpoch: 1, MaxLogBytes: 1024}
}

// CompileResult is the full serialised compile outcome.
type CompileResult struct {
	Status       Status
	ReportJSON   string
	LogBytes     []byte
	TexStatsJSON string
	MainXDVBytes []byte
}

// CompileMain compiles m under DefaultRequest.
func CompileMain(m *mount.Mount) CompileResult {
	return CompileRequest(m, DefaultRequest())
}

// CompileRequest runs the full pipeline: validate request fields, finalise
// the mount, read the entrypoint, tokenize, expand \input, expand macros
// and conditionals, build stats, then attempt the strict OK-subset render
// and DVI emission. Each stage fails closed with the earliest
// precedence-ordered reason; the A-F lettering in the external reason
// taxonomy groups reasons by component, but execution itself follows this
// stage order (input/macro expansion runs before stats build, since stats
// build walks the post-expansion stream).
func CompileRequest(m *mount.Mount, req Request) CompileResult {
	invariant.NotNil(m, "m")

	// A. Request fields.
	if req.Entrypoint != "main.tex" ||
		req.SourceDateEpoch == 0 ||
		req.MaxLogBytes < minMaxLogBytes ||
		req.MaxLogBytes > maxMaxLogBytes {
		return invalidInput(reason.RequestInvalid, req.MaxLogBytes)
	}

	// B. Mount finalisation.
	if err := m.Finalize(); err != nil {
		return invalidInput(reason.MountFinalizeFailed, req.MaxLogBytes)
	}

	// C. Entrypoint read.
	source, found := m.ReadFile(req.Entrypoint)
	if !found {
		return invalidInput(reason.EntrypointMissing, req.MaxLogBytes)
	}

	// D. Tokenisation.
	tokens, err := tokenizer.Tokenize(source)
	if err != nil {
		return invalidInputFromErr(err, req.MaxLogBytes)
	}

	// \input expansion.
	expanded, trace, err := inputexpand.Expand(tokens, m)
	if err != nil {
		return invalidInputFromErr(err, req.MaxLogBytes)
	}

	// Macro and conditional expansion.
	expanded, err = macro.Expand(expanded)
	if err != nil {
		return invalidInputFromErr(err, req.MaxLogBytes)
	}

	// E. Stats build, over the fully expanded stream.
	texStats, err := stats.Build(expanded)
	if err != nil {
		return invalidInputFromErr(err, req.MaxLogBytes)
	}
	texStatsJSON := texStats.JSON()

	// OK-subset render attempt.
	body, ok := render.ExtractBody(expanded)
	if !ok {
		clog.Debug("compile: body outside OK subset, failing over to NOT_IMPLEMENTED")
		return notImplemented(trace, texStatsJSON, req.MaxLogBytes)
	}

	xdvBytes, ok := dvi.Write(body, dvi.Options{
		GlyphAdvanceSP: render.GlyphAdvanceSP,
		LineAdvanceSP:  render.LineAdvanceSP,
	})
	if !ok {
		clog.Debug("compile: dvi writer declined body, failing over to NOT_IMPLEMENTED")
		return notImplemented(trace, texStatsJSON, req.MaxLogBytes)
	}

	clog.Debug("compile: ok", "body_bytes", len(body), "xdv_bytes", len(xdvBytes))
	return CompileResult{
		Status:       Ok,
		ReportJSON:   reportJSON(Ok),
		LogBytes:     nil,
		TexStatsJSON: texStatsJSON,
		MainXDVBytes: xdvBytes,
	}
}

func invalidInputFromErr(err error, maxLogBytes int) CompileResult {
	r, ok := reason.As(err)
	invariant.Precondition(ok, "invalidInputFromErr requires a *reason.Error, got %T", err)
	return invalidInput(r, maxLogBytes)
}

func invalidInput(r reason.Reason, maxLogBytes int) CompileResult {
	return CompileResult{
		Status:       InvalidInput,
		ReportJSON:   reportJSON(InvalidInput),
		LogBytes:     truncateLogBytes(reason.LogBytes(r), maxLogBytes),
		TexStatsJSON: "",
		MainXDVBytes: nil,
	}
}

func notImplemented(trace *inputexpand.Trace, texStatsJSON string, maxLogBytes int) CompileResult {
	logBytes := []byte(notImplementedLogPrefix)
	if trace != nil {
		withTrace := append(append([]byte{}, logBytes...), inputTraceLogPrefix+trace.JSON()...)
		if len(withTrace) <= maxLogBytes {
			logBytes = withTrace
		}
	}
	return CompileResult{
		Status:       NotImplemented,
		ReportJSON:   reportJSON(NotImplemented),
		LogBytes:     truncateLogBytes(logBytes, maxLogBytes),
		TexStatsJSON: texStatsJSON,
		MainXDVBytes: nil,
	}
}

func truncateLogBytes(b []byte, maxLogBytes int) []byte {
	if len(b) > maxLogBytes {
		return b[:maxLogBytes]
	}
	return b
}

func reportJSON(s Status) string {
	switch s {
	case Ok:
		return `{"status":"OK","missing_components":[]}`
	case InvalidInput:
		return `{"status":"INVALID_INPUT","missing_components":[]}`
	case NotImplemented:
		return `{"status":"NOT_IMPLEMENTED","missing_components":["tex-engine"]}`
	default:
		invariant.Invariant(false, "reportJSON: unknown status %d", s)
		return ""
	}
}
