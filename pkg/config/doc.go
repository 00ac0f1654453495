// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Parsing is delegated to github.com/caarlos0/env using `env` struct tags;
// github.com/joho/godotenv loads a .env file once per process before the
// first parse. Every configuration type is parsed at most once and cached,
// so components sharing a config type always agree on its values.
package config
