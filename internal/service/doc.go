// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive their dependencies through constructor injection and
// depend only on domain entities and store interfaces, never on specific
// infrastructure implementations. The self-QA service in particular treats
// the model client as a plain input: when no usable model configuration can
// be resolved, it runs the session with a nil client and lets every request
// take the uniform failure path rather than surfacing an error.
package service
