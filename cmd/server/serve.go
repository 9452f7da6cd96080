package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/wordimpostor/backend/internal/config"
	"github.com/wordimpostor/backend/internal/game"
	"github.com/wordimpostor/backend/internal/ws"
	staticserver "github.com/wordimpostor/backend/static"
)

func serve(cfg *config.Config) error {
	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/socket.io") {
			return
		}
		zerologlog.Info().Str("path", path).Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start)).Msg("http")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	store := game.NewStore()
	sock := ws.New(store, *cfg)
	io := sock.Mount(r)
	defer io.Close()

	// Existence probe for the client entry screen.
	r.GET("/api/session/:codeword", func(c *gin.Context) {
		sess, err := store.Get(strings.ToLower(c.Param("codeword")))
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"codeword": sess.Codeword(),
			"stage":    sess.Stage(),
			"players":  sess.PlayerCount(),
		})
	})

	// QR code with the join link, so a phone can scan into a session.
	r.GET("/qr/:codeword", func(c *gin.Context) {
		codeword := strings.ToLower(c.Param("codeword"))
		if _, err := store.Get(codeword); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		url := fmt.Sprintf("%s://%s/?session=%s", scheme, c.Request.Host, codeword)
		png, err := qrcode.Encode(url, qrcode.Medium, 320)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	})

	// Serve the embedded frontend build for all other routes.
	r.NoRoute(func(c *gin.Context) {
		staticserver.Handler().ServeHTTP(c.Writer, c.Request)
	})

	addr := fmt.Sprintf("%s:%d", cfg.Bind, cfg.Port)
	zerologlog.Info().Str("addr", addr).Msg("listening")
	return r.Run(addr)
}
