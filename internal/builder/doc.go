// Package builder assembles runnable worker structures from the
// format-agnostic project model. Role strategies are selected through a
// wildcard-aware catalog, deferred component payloads are bound to a
// lazy-reference backend fed by settings, and every worker is validated
// against its role as it is built.
package builder
