// Package store defines interfaces for persisting model endpoint
// configurations. The interfaces abstract the storage mechanism so the
// generation services stay independent of the database technology
// behind them.
package store
