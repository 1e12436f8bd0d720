package ws

import (
	"context"
	"hash/fnv"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/NotAnsar/orava-api/internal/auth"
	"github.com/NotAnsar/orava-api/internal/config"
	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server pushes order activity to connected dashboard clients. The feed is
// poll-based: a single loop watches the orders table and broadcasts a
// snapshot whenever something changes.
type Server struct {
	Store  *store.Store
	Logger *zap.Logger
	Config config.Config

	started sync.Once
	mu      sync.Mutex
	clients map[*client]struct{}
}

func New(s *store.Store, logger *zap.Logger, cfg config.Config) *Server {
	return &Server{
		Store:   s,
		Logger:  logger,
		Config:  cfg,
		clients: make(map[*client]struct{}),
	}
}

type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) writeJSON(value any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(value)
}

type ordersSnapshot struct {
	Type      string         `json:"type"`
	Orders    []store.Order  `json:"orders"`
	ByStatus  map[string]int `json:"byStatus"`
	UpdatedAt time.Time      `json:"updatedAt"`

	fingerprint string
}

// ordersFingerprint digests order identity, status, and creation time so
// the poll loop can see status flips and deletions, which never advance
// any timestamp.
func ordersFingerprint(orders []store.Order) string {
	h := fnv.New64a()
	for _, order := range orders {
		_, _ = io.WriteString(h, order.ID.String())
		_, _ = io.WriteString(h, string(order.Status))
		_, _ = io.WriteString(h, order.CreatedAt.UTC().Format(time.RFC3339Nano))
		_, _ = io.WriteString(h, "\n")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// OrdersFeed upgrades the connection after verifying the bearer token
// passed as a query parameter. Browsers cannot set headers on websocket
// upgrades.
func (s *Server) OrdersFeed(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.VerifyAccessToken(r.URL.Query().Get("token"), s.Config.JWTSecret)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	role, ok := auth.ParseRole(string(claims.Role))
	if !ok || !auth.CanViewDashboard(role) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	s.started.Do(func() {
		go s.pollLoop(context.Background())
	})

	if snapshot, err := s.snapshot(r.Context()); err == nil {
		_ = c.writeJSON(snapshot)
	}

	// Drain reads so close frames are processed; the feed is one-way.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, c)
			s.mu.Unlock()
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) pollLoop(ctx context.Context) {
	interval := s.Config.WSOrderPollInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastFingerprint string
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		active := len(s.clients)
		s.mu.Unlock()
		if active == 0 {
			continue
		}

		snapshot, err := s.snapshot(ctx)
		if err != nil {
			s.Logger.Warn("orders feed poll failed", zap.Error(err))
			continue
		}
		if snapshot.fingerprint == lastFingerprint {
			continue
		}
		lastFingerprint = snapshot.fingerprint
		s.broadcast(snapshot)
	}
}

func (s *Server) snapshot(ctx context.Context) (ordersSnapshot, error) {
	orders, err := s.Store.Orders(ctx)
	if err != nil {
		return ordersSnapshot{}, err
	}

	byStatus := make(map[string]int)
	var newest time.Time
	for _, order := range orders {
		byStatus[string(order.Status)]++
		if order.CreatedAt.After(newest) {
			newest = order.CreatedAt
		}
	}

	recent := orders
	if len(recent) > 20 {
		recent = recent[:20]
	}

	return ordersSnapshot{
		Type:        "orders",
		Orders:      recent,
		ByStatus:    byStatus,
		UpdatedAt:   newest,
		fingerprint: ordersFingerprint(orders),
	}, nil
}

func (s *Server) broadcast(snapshot ordersSnapshot) {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.writeJSON(snapshot); err != nil {
			_ = c.conn.Close()
			s.mu.Lock()
			delete(s.clients, c)
			s.mu.Unlock()
		}
	}
}
