// meta/meta.go
package meta

// MAX_TURNS caps the gamemaster loop for hosted games.
const MAX_TURNS = 300

// SELFPLAY_GAMES defines the default number of games per self-play run.
const SELFPLAY_GAMES = 10

// SERVER_ADDR is the default listen address for the HTTP communicator.
const SERVER_ADDR = ":8080"
