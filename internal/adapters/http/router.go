package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/adapters/resolver"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/adapters/signal"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/app"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/config"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/core"
)

func genClientToken() string {
	return uuid.NewString()
}

// ClientTokenMiddleware mints the opaque connection identity the
// signaling layer binds room membership to.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, hub *app.Hub, links core.RoomResolver) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("SkillswapRTC", store))
	r.Use(ClientTokenMiddleware())

	r.Static("/static", cfg.StaticPath)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	ctl := signal.NewController(hub, cfg.ReadLimit, cfg.PingPeriod)

	api := r.Group("/api")

	api.GET("/ws", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("sid", c.GetString("client_token")).Msg("ws endpoint hit")
		ctl.Handle(ctx, c)
	})

	api.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, hub.Rooms())
	})

	api.GET("/ice", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"iceServers": hub.ICEServers})
	})

	api.POST("/rooms/resolve", resolveLink(links))

	return r
}

// resolveLink decodes a shareable join link. Rejections carry the
// {status:false, message} shape the web client expects and leave the
// membership table untouched.
func resolveLink(links core.RoomResolver) gin.HandlerFunc {
	type resolveRequest struct {
		Token string `json:"token" binding:"required"`
	}
	return func(c *gin.Context) {
		var req resolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "missing token"})
			return
		}
		room, err := links.Resolve(c.Request.Context(), req.Token)
		if err != nil {
			if !errors.Is(err, resolver.ErrInvalidLink) {
				log.Error().Err(err).Str("module", "adapters.http").Msg("resolve link")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": "invalid or expired link"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "roomId": room})
	}
}
