// Package api handles incoming HTTP requests, request validation, and
// response formatting for the self-QA endpoints. It translates HTTP
// concerns into calls on the internal application services and keeps
// transport details out of them.
package api
