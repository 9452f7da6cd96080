package ws

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"

	"github.com/wordimpostor/backend/internal/config"
	"github.com/wordimpostor/backend/internal/game"
)

// ConnCtx is the per-connection context: which session this connection is in
// and under which player name. The connection id itself doubles as the
// player key inside the session.
type ConnCtx struct {
	Codeword string
	Name     string
}

// roomConn is the slice of socketio.Conn the room bookkeeping needs.
type roomConn interface {
	ID() string
	Context() interface{}
	SetContext(v interface{})
	Join(room string)
	Leave(room string)
}

// Server maps socket.io connection events onto session state and pushes the
// updated state back to every connection in the session's room.
type Server struct {
	store *game.Store
	cfg   config.Config

	mu      sync.Mutex
	members map[string]map[string]roomConn // codeword -> socketID -> conn
}

func New(store *game.Store, cfg config.Config) *Server {
	return &Server{store: store, cfg: cfg, members: make(map[string]map[string]roomConn)}
}

// Mount attaches the socket.io server with all game event handlers to the
// given gin engine.
func (srv *Server) Mount(r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(&ConnCtx{})
		log.Info().Str("sid", s.ID()).Msg("socket connected")
		return nil
	})

	io.OnEvent("/", "create-session", func(s socketio.Conn, payload struct {
		PlayerName string `json:"playerName"`
		Language   string `json:"language"`
	}) {
		sess := srv.store.Create(s.ID(), payload.PlayerName, payload.Language)
		codeword := srv.registerConn(sess, s, payload.PlayerName)

		s.Emit("session-created", map[string]any{
			"codeword": codeword,
			"isAdmin":  true,
			"playerId": s.ID(),
		})
		s.Emit("game-state", sess.Snapshot())
		log.Info().Str("code", codeword).Str("player", payload.PlayerName).Msg("session created")
	})

	io.OnEvent("/", "join-session", func(s socketio.Conn, payload struct {
		Codeword   string `json:"codeword"`
		PlayerName string `json:"playerName"`
	}) {
		sess, err := srv.store.Get(payload.Codeword)
		if err != nil {
			s.Emit("join-error", map[string]any{"message": "Invalid codeword"})
			return
		}
		if _, err := sess.Join(s.ID(), payload.PlayerName); err != nil {
			s.Emit("join-error", map[string]any{"message": "Game already in progress"})
			return
		}
		codeword := srv.registerConn(sess, s, payload.PlayerName)

		s.Emit("join-success", map[string]any{"isAdmin": false, "playerId": s.ID()})
		srv.broadcastState(io, sess)
		log.Info().Str("code", codeword).Str("player", payload.PlayerName).Msg("player joined")
	})

	io.OnEvent("/", "rejoin-session", func(s socketio.Conn, payload struct {
		Codeword   string `json:"codeword"`
		PlayerName string `json:"playerName"`
	}) {
		sess, err := srv.store.Get(payload.Codeword)
		if err != nil {
			log.Warn().Str("code", payload.Codeword).Str("player", payload.PlayerName).Msg("rejoin: session not found")
			s.Emit("rejoin-error", map[string]any{"message": "Session not found"})
			return
		}
		p, err := sess.Rejoin(s.ID(), payload.PlayerName)
		if err != nil {
			log.Warn().Str("code", payload.Codeword).Str("player", payload.PlayerName).
				Str("stage", string(sess.Stage())).Msg("rejoin: player not found in running game")
			s.Emit("rejoin-error", map[string]any{
				"message": fmt.Sprintf("Player %q not found in session. Game is in progress.", payload.PlayerName),
			})
			return
		}
		codeword := srv.registerConn(sess, s, payload.PlayerName)

		s.Emit("rejoin-success", map[string]any{"isAdmin": p.IsAdmin, "playerId": s.ID()})
		// The rejoining client has no other way to learn the current stage
		// and round, so it gets the state directly as well as via the room.
		s.Emit("game-state", sess.Snapshot())
		srv.broadcastState(io, sess)
		log.Info().Str("code", codeword).Str("player", payload.PlayerName).
			Bool("isAdmin", p.IsAdmin).Msg("player rejoined")
	})

	io.OnEvent("/", "update-settings", func(s socketio.Conn, payload struct {
		Codeword        string `json:"codeword"`
		NumImpostors    int    `json:"numImpostors"`
		WordsPerPlayer  int    `json:"wordsPerPlayer"`
		UsersEnterWords bool   `json:"usersEnterWords"`
		Language        string `json:"language"`
	}) {
		sess, err := srv.store.Get(payload.Codeword)
		if err != nil {
			// Stale codeword after a migration; fall back to the connection.
			var ok bool
			sess, ok = srv.store.FindByConn(s.ID())
			if !ok {
				log.Warn().Str("code", payload.Codeword).Str("sid", s.ID()).Msg("update-settings: session not found")
				return
			}
		}
		oldCodeword := sess.Codeword()
		languageChanged, err := sess.UpdateSettings(s.ID(), game.Settings{
			NumImpostors:    payload.NumImpostors,
			WordsPerPlayer:  payload.WordsPerPlayer,
			UsersEnterWords: payload.UsersEnterWords,
			Language:        payload.Language,
		})
		if err != nil {
			log.Warn().Err(err).Str("code", oldCodeword).Str("sid", s.ID()).Msg("update-settings rejected")
			return
		}

		if languageChanged {
			newCodeword, err := srv.store.Rekey(oldCodeword, payload.Language)
			if err != nil {
				log.Error().Err(err).Str("code", oldCodeword).Msg("codeword migration failed")
				return
			}
			srv.migrateRoom(oldCodeword, newCodeword)
			io.BroadcastToRoom("/", newCodeword, "codeword-updated", map[string]any{"newCodeword": newCodeword})
			log.Info().Str("from", oldCodeword).Str("to", newCodeword).Msg("codeword migrated")
		}
		srv.broadcastState(io, sess)
	})

	io.OnEvent("/", "start-game", func(s socketio.Conn, payload struct {
		Codeword string `json:"codeword"`
	}) {
		sess, err := srv.store.Get(payload.Codeword)
		if err != nil {
			log.Warn().Str("code", payload.Codeword).Msg("start-game: session not found")
			return
		}
		before := sess.Stage()
		if err := sess.StartGame(s.ID()); err != nil {
			log.Warn().Err(err).Str("code", payload.Codeword).Str("sid", s.ID()).Msg("start-game rejected")
			return
		}
		log.Info().Str("code", payload.Codeword).Str("from", string(before)).
			Str("to", string(sess.Stage())).Msg("stage transition")
		srv.broadcastState(io, sess)
	})

	io.OnEvent("/", "submit-words", func(s socketio.Conn, payload struct {
		Codeword string           `json:"codeword"`
		Words    []game.WordEntry `json:"words"`
	}) {
		sess, err := srv.store.Get(payload.Codeword)
		if err != nil {
			log.Warn().Str("code", payload.Codeword).Msg("submit-words: session not found")
			return
		}
		if err := sess.SubmitWords(s.ID(), payload.Words); err != nil {
			log.Warn().Err(err).Str("code", payload.Codeword).Str("sid", s.ID()).Msg("submit-words rejected")
			return
		}
		// Broadcast whether or not the ready count tipped the stage over, so
		// waiting-room views show live submission progress.
		srv.broadcastState(io, sess)
	})

	io.OnEvent("/", "next-round", func(s socketio.Conn, payload struct {
		Codeword string `json:"codeword"`
	}) {
		sess, err := srv.store.Get(payload.Codeword)
		if err != nil {
			log.Warn().Str("code", payload.Codeword).Msg("next-round: session not found")
			return
		}
		if err := sess.NextRound(s.ID()); err != nil {
			log.Warn().Err(err).Str("code", payload.Codeword).Str("sid", s.ID()).Msg("next-round rejected")
			return
		}
		if sess.Stage() == game.StageFinished {
			log.Info().Str("code", payload.Codeword).Msg("game finished")
			if srv.cfg.ExportEnabled {
				if err := game.ExportSession(sess, srv.cfg.ExportFile); err != nil {
					log.Error().Err(err).Str("code", payload.Codeword).Msg("failed to export game results")
				}
			}
		}
		srv.broadcastState(io, sess)
	})

	io.OnEvent("/", "restart-game", func(s socketio.Conn, payload struct {
		Codeword string `json:"codeword"`
	}) {
		sess, err := srv.store.Get(payload.Codeword)
		if err != nil {
			log.Warn().Str("code", payload.Codeword).Msg("restart-game: session not found")
			return
		}
		if err := sess.Restart(s.ID()); err != nil {
			log.Warn().Err(err).Str("code", payload.Codeword).Str("sid", s.ID()).Msg("restart-game rejected")
			return
		}
		log.Info().Str("code", payload.Codeword).Msg("game restarted")
		srv.broadcastState(io, sess)
	})

	io.OnEvent("/", "leave-session", func(s socketio.Conn, payload struct {
		Codeword string `json:"codeword"`
	}) {
		sess, err := srv.store.Get(payload.Codeword)
		if err != nil {
			return
		}
		p, ok := sess.PlayerByConn(s.ID())
		if !ok {
			return
		}
		if p.IsAdmin {
			// Admin is not transferable; the session ends for everyone.
			srv.store.Delete(payload.Codeword)
			io.BroadcastToRoom("/", payload.Codeword, "session-ended")
			srv.dropRoom(payload.Codeword)
			log.Info().Str("code", payload.Codeword).Msg("admin left, session ended")
			return
		}
		sess.RemovePlayer(s.ID())
		s.Leave(payload.Codeword)
		srv.removeMember(payload.Codeword, s)
		srv.broadcastState(io, sess)
		log.Info().Str("code", payload.Codeword).Str("player", p.Name).Msg("player left")
	})

	io.OnError("/", func(s socketio.Conn, e error) {
		log.Error().Str("sid", s.ID()).Err(e).Msg("socket error")
	})

	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("socket disconnected")
		sess, ok := srv.store.FindByConn(s.ID())
		if !ok {
			if ctx, ok := s.Context().(*ConnCtx); ok && ctx.Codeword != "" {
				srv.removeMember(ctx.Codeword, s)
			}
			return
		}
		codeword := sess.Codeword()
		srv.removeMember(codeword, s)
		p, ok := sess.PlayerByConn(s.ID())
		if !ok {
			return
		}
		switch {
		case p.IsAdmin:
			srv.armAdminGraceTimer(io, codeword, p.Name, s.ID())
		case sess.Stage().InProgress():
			// Leave the stale roster entry in place; the player can resume
			// their identity with rejoin-session under a new connection.
			log.Info().Str("code", codeword).Str("player", p.Name).Msg("player disconnected mid-game, keeping for rejoin")
		default:
			sess.RemovePlayer(s.ID())
			srv.broadcastState(io, sess)
		}
	})

	go io.Serve()

	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

// armAdminGraceTimer gives a disconnected admin a grace window to rejoin
// under a new connection before the session is torn down. The timer is never
// cancelled; it re-validates against live roster state when it fires, so a
// rejoined admin renders it a no-op and redundant timers are harmless.
func (srv *Server) armAdminGraceTimer(io *socketio.Server, codeword, adminName, oldConnID string) {
	log.Info().Str("code", codeword).Str("player", adminName).
		Dur("grace", srv.cfg.AdminGrace).Msg("admin disconnected, grace timer armed")
	time.AfterFunc(srv.cfg.AdminGrace, func() {
		if srv.expireAdminGrace(codeword, adminName, oldConnID) {
			io.BroadcastToRoom("/", codeword, "session-ended")
		}
	})
}

// expireAdminGrace is the grace timer's fire-time check: if the admin has
// not rejoined under a different connection id, the session is torn down.
// Reports whether the room should be told the session ended.
func (srv *Server) expireAdminGrace(codeword, adminName, oldConnID string) bool {
	sess, err := srv.store.Get(codeword)
	if err != nil {
		return false
	}
	if sess.AdminRejoined(adminName, oldConnID) {
		return false
	}
	srv.store.Delete(codeword)
	srv.dropRoom(codeword)
	log.Info().Str("code", codeword).Str("player", adminName).Msg("admin did not return, session ended")
	return true
}

// broadcastState pushes the current snapshot to the session's room,
// fire-and-forget. The snapshot is taken under the session lock; the emit
// happens outside it.
func (srv *Server) broadcastState(io *socketio.Server, sess *game.Session) {
	io.BroadcastToRoom("/", sess.Codeword(), "game-state", sess.Snapshot())
}

// registerConn binds a connection to its session's room and then reconciles
// against a codeword migration that may have raced the registration: the
// migration moves every connection it finds in the members map, so any
// drift still observable afterwards is this connection's own to repair.
func (srv *Server) registerConn(sess *game.Session, c roomConn, name string) string {
	codeword := sess.Codeword()
	srv.bindRoom(codeword, c, name)
	return srv.syncRoom(sess, c, codeword)
}

// bindRoom joins the connection to the given room and records it in the
// members map.
func (srv *Server) bindRoom(codeword string, c roomConn, name string) {
	c.SetContext(&ConnCtx{Codeword: codeword, Name: name})
	c.Join(codeword)
	srv.addMember(codeword, c)
}

// syncRoom moves the connection to the session's current room if the
// codeword changed since it was read. Loops because another migration can
// race the move; once the codewords agree, either no migration happened
// since the registration completed, or the migration saw the fully
// registered connection and moved it itself.
func (srv *Server) syncRoom(sess *game.Session, c roomConn, codeword string) string {
	for {
		current := sess.Codeword()
		if current == codeword {
			return current
		}
		srv.moveConn(codeword, current, c)
		codeword = current
	}
}

// moveConn transfers one connection between rooms, updating the members map
// and the connection's context. Idempotent when a migration already moved
// the connection.
func (srv *Server) moveConn(oldCodeword, newCodeword string, c roomConn) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if m := srv.members[oldCodeword]; m != nil {
		delete(m, c.ID())
	}
	c.Leave(oldCodeword)
	c.Join(newCodeword)
	if srv.members[newCodeword] == nil {
		srv.members[newCodeword] = make(map[string]roomConn)
	}
	srv.members[newCodeword][c.ID()] = c
	if ctx, ok := c.Context().(*ConnCtx); ok {
		ctx.Codeword = newCodeword
	}
}

func (srv *Server) addMember(codeword string, c roomConn) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.members[codeword] == nil {
		srv.members[codeword] = make(map[string]roomConn)
	}
	srv.members[codeword][c.ID()] = c
}

func (srv *Server) removeMember(codeword string, c roomConn) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if m := srv.members[codeword]; m != nil {
		delete(m, c.ID())
	}
}

func (srv *Server) dropRoom(codeword string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	delete(srv.members, codeword)
}

// migrateRoom moves every connection from the old room to the new one after
// a codeword rekey, and updates each connection's context so later events
// resolve against the new key.
func (srv *Server) migrateRoom(oldCodeword, newCodeword string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	conns := srv.members[oldCodeword]
	delete(srv.members, oldCodeword)
	if conns == nil {
		return
	}
	for _, c := range conns {
		c.Leave(oldCodeword)
		c.Join(newCodeword)
		if ctx, ok := c.Context().(*ConnCtx); ok {
			ctx.Codeword = newCodeword
		}
	}
	srv.members[newCodeword] = conns
}
