// Package config handles configuration loading and validation from
// environment variables and optional config files. It provides
// type-safe access to server, database, auth, model client, and
// generation settings.
package config
