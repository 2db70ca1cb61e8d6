package main

import (
	"flag"
	"time"

	"checkers/communication/client"
	"checkers/communication/server"
	"checkers/experiments"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/player"

	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", meta.SELFPLAY_GAMES, "Number of self-play games")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Base RNG seed for the agents")
	serve := flag.Bool("serve", false, "Host a game over HTTP instead of running self-play")
	connect := flag.String("connect", "", "Server URL to join as a player")
	color := flag.String("color", "black", "Color to play when joining a server")
	flag.Parse()

	switch {
	case *serve:
		runHosted()
	case *connect != "":
		joinGame(*connect, *color, *seed)
	default:
		if err := experiments.RunSelfPlay(*games, *seed); err != nil {
			log.Fatal().Err(err).Msg("self-play run failed")
		}
	}
}

// runHosted starts the HTTP communicator and drives a game from actions
// sent by remote players.
func runHosted() {
	comm := server.NewServerCommunicator()
	go comm.Start()

	gm := gamemaster.NewGameMaster(comm)
	gm.InitializeGame()
	log.Info().Msgf("hosting game on %s", meta.SERVER_ADDR)
	gm.RunGame()
}

func joinGame(serverURL, color string, seed uint64) {
	owner := game.Black
	if color == "white" {
		owner = game.White
	}
	log.Info().Msgf("joining %s as %s", serverURL, owner)

	comm := client.NewClientCommunicator(serverURL)
	player.NewPlayer(owner, comm, seed).Play()
}
