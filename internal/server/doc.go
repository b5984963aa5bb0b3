// Package server exposes the quiz engine as MCP tools.
//
// Three tools make up the entire surface:
//
//   - request_quiz: select a coordinate for a free-text condition, create a
//     session, return a satellite map link and the quiz ID
//   - request_hint: serve one hint (region tags, reverse-geocoded vicinity, or
//     a wider image) for an open quiz
//   - request_answer: reveal the answer with an annotated map link; idempotent
//
// Two transports are supported. The default is MCP over stdio, started by an
// MCP client; stdout carries the protocol, so all logging goes to stderr. The
// alternative is Streamable HTTP, mounted at /mcp on a chi router alongside
// /healthz and Prometheus /metrics.
//
// # Error handling
//
// Every recoverable failure is translated into a structured tool error result
// at this boundary: unknown quiz IDs become a "no such quiz" message, rejected
// zoom levels explain the allowed range, and a map provider that could not be
// configured degrades responses to coordinates without links. Nothing
// propagates to the calling agent as a protocol fault.
package server
