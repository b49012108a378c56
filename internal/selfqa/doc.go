// Package selfqa implements the self-QA training pair generator: a fixed
// catalog of identity questions is fanned out to a chat-completion model
// under a bounded worker pool, and the successful answers are collected
// into question/answer pairs.
//
// The package is deliberately best-effort. A request that fails for any
// reason is logged and dropped; the batch always runs to completion and
// partial output is always acceptable. Callers that need to distinguish
// failure modes must consult the logs, not the result.
package selfqa
