// Package logger provides the structured logging facade for the synthesis
// network. Rendering format and minimum severity come from the
// configuration snapshot; every record carries a context tag naming the
// subsystem that emitted it.
//
// Records render as single-line JSON when the configuration asks for
// structured json output, and as human-readable console lines otherwise.
// A log call never fails the caller: rendering problems degrade to a
// plain-text record carrying the original message.
package logger
