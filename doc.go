// Package carreltex implements a deterministic, sandboxed TeX-like compiler
// core: a virtual file mount, tokenizer, \input expander, macro expander,
// stats builder, strict OK-subset renderer, and DVI v2 codec, orchestrated
// by CompileMain/CompileRequest into a fixed three-way report.
package carreltex
