package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"checkers/communication"
	"checkers/game"
	"checkers/meta"
)

type ServerCommunicator struct {
	gameState *game.GameState
	actions   chan communication.Action
	mutex     sync.RWMutex
}

// NewServerCommunicator initializes and returns a new ServerCommunicator.
func NewServerCommunicator() *ServerCommunicator {
	sc := &ServerCommunicator{
		gameState: nil, // the GameMaster sets it via UpdateGameState
		actions:   make(chan communication.Action, 100),
	}
	return sc
}

// Start runs the HTTP server.
func (sc *ServerCommunicator) Start() {
	http.HandleFunc("/getGameState", sc.handleGetGameState)
	http.HandleFunc("/updateGameState", sc.handleUpdateGameState)
	http.HandleFunc("/sendAction", sc.handleSendAction)
	http.HandleFunc("/receiveAction", sc.handleReceiveAction)
	http.ListenAndServe(meta.SERVER_ADDR, nil)
}

func (sc *ServerCommunicator) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	sc.mutex.RLock()
	defer sc.mutex.RUnlock()
	if sc.gameState == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(sc.gameState)
}

func (sc *ServerCommunicator) handleUpdateGameState(w http.ResponseWriter, r *http.Request) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	var gs game.GameState
	if err := json.NewDecoder(r.Body).Decode(&gs); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	sc.gameState = &gs
	w.WriteHeader(http.StatusOK)
}

func (sc *ServerCommunicator) handleSendAction(w http.ResponseWriter, r *http.Request) {
	var action communication.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	sc.actions <- action
	w.WriteHeader(http.StatusOK)
}

func (sc *ServerCommunicator) handleReceiveAction(w http.ResponseWriter, r *http.Request) {
	select {
	case action := <-sc.actions:
		json.NewEncoder(w).Encode(action)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (sc *ServerCommunicator) GetGameState() *game.GameState {
	sc.mutex.RLock()
	defer sc.mutex.RUnlock()
	if sc.gameState == nil {
		return nil
	}
	return sc.gameState.Copy()
}

func (sc *ServerCommunicator) UpdateGameState(gs *game.GameState) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	sc.gameState = gs
}

func (sc *ServerCommunicator) SendAction(action communication.Action) {
	sc.actions <- action
}

func (sc *ServerCommunicator) ReceiveAction() communication.Action {
	return <-sc.actions
}
