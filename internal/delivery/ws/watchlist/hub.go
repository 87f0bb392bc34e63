package ws_watchlist

import (
	"log/slog"
	"sync"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

const EventWatchlistUpdated = "WATCHLIST_UPDATED"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type userEvent struct {
	username model.Username
	event    Event
}

// Hub fans watchlist updates out to the websocket clients of one user.
// Delivery is best effort: a client with a full send buffer is dropped.
type Hub struct {
	logger     *slog.Logger
	clients    map[*Client]bool
	users      map[model.Username]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan userEvent
	mu         sync.RWMutex
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		logger:     slog.Default(),
		clients:    make(map[*Client]bool),
		users:      make(map[model.Username]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan userEvent),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case ue := <-h.broadcast:
			h.broadcastToUser(ue.username, ue.event)
		}
	}
}

// NotifyAdded broadcasts a watchlist update to the user's clients.
func (h *Hub) NotifyAdded(username model.Username, movie string) {
	h.broadcast <- userEvent{
		username: username,
		event: Event{
			Type: EventWatchlistUpdated,
			Payload: map[string]any{
				"username": username,
				"movie":    movie,
			},
		},
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if _, exists := h.users[client.username]; !exists {
		h.users[client.username] = make(map[*Client]bool)
	}
	h.users[client.username][client] = true

	h.logger.Info("watchlist client registered",
		slog.String("username", client.username),
	)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.dropClient(client) {
		h.logger.Info("watchlist client unregistered",
			slog.String("username", client.username),
		)
	}
}

// dropClient removes the client from both maps and closes its send channel.
// A client already removed is a no-op, so a slow client dropped during a
// broadcast can still unregister later. Caller holds the write lock.
func (h *Hub) dropClient(client *Client) bool {
	if _, ok := h.clients[client]; !ok {
		return false
	}

	delete(h.clients, client)
	close(client.send)

	if userClients, exists := h.users[client.username]; exists {
		delete(userClients, client)
		if len(userClients) == 0 {
			delete(h.users, client.username)
		}
	}
	return true
}

func (h *Hub) broadcastToUser(username model.Username, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.users[username] {
		select {
		case client.send <- event:
		default:
			h.dropClient(client)
		}
	}
}
