// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the model transport, agent discovery and
// messaging, the fact store, and the GitHub API surface.
package driven
