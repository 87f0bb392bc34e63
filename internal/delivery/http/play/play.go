package http_play

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
	usecase_review "github.com/kkcodebase/movie-mood-predictor/internal/usecase/review"
	usecase_suggest "github.com/kkcodebase/movie-mood-predictor/internal/usecase/suggest"
	usecase_watchlist "github.com/kkcodebase/movie-mood-predictor/internal/usecase/watchlist"
	ws_watchlist "github.com/kkcodebase/movie-mood-predictor/internal/delivery/ws/watchlist"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Controller is the action dispatcher: one POST entry point routed on the
// payload's action field.
type Controller struct {
	reviews     *usecase_review.Usecase
	watchlists  *usecase_watchlist.Usecase
	suggestions *usecase_suggest.Usecase
	hub         *ws_watchlist.Hub

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	reviews *usecase_review.Usecase,
	watchlists *usecase_watchlist.Usecase,
	suggestions *usecase_suggest.Usecase,
	hub *ws_watchlist.Hub,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		reviews:     reviews,
		watchlists:  watchlists,
		suggestions: suggestions,
		hub:         hub,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/play", c.play)

	watchlist := router.Group("/watchlist")
	watchlist.GET("/ws", c.watchlistWS)
}

func (c *Controller) play(ctx *gin.Context) {
	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	body := parseEnvelope(raw)

	action := field(body, "action", "analyze")
	username := field(body, "username", model.GuestUsername)
	movie := field(body, "movie", "")
	review := field(body, "review", "")
	mood := strings.ToLower(field(body, "mood", ""))

	switch action {
	case "analyze":
		c.handleAnalyze(ctx, username, movie, review)
	case "add":
		c.handleAdd(ctx, username, movie)
	case "view":
		c.handleView(ctx, username)
	case "suggest":
		c.handleSuggest(ctx, mood)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
	}
}

func (c *Controller) handleAnalyze(ctx *gin.Context, username model.Username, movie, review string) {
	res := c.reviews.Analyze(ctx.Request.Context(), username, movie, review)

	ctx.JSON(http.StatusOK, gin.H{
		"username":                 res.Username,
		"movie":                    res.Movie,
		"sentiment":                res.Sentiment,
		"sentiment_scores":         res.Scores,
		"message":                  fmt.Sprintf("Your review of '%s' seems %s!", res.Movie, res.Sentiment),
		"personalized_suggestions": res.Suggestions,
		"saved_review":             res.Saved,
		"review_id":                res.ReviewID,
	})
}

func (c *Controller) handleAdd(ctx *gin.Context, username model.Username, movie string) {
	watchlist, err := c.watchlists.Add(ctx.Request.Context(), username, movie)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "movie required"})
		return
	}

	c.hub.NotifyAdded(username, movie)

	ctx.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Added %s to %s's watchlist", movie, username),
		"watchlist": watchlist,
	})
}

func (c *Controller) handleView(ctx *gin.Context, username model.Username) {
	ctx.JSON(http.StatusOK, gin.H{
		"watchlist": c.watchlists.View(ctx.Request.Context(), username),
	})
}

func (c *Controller) handleSuggest(ctx *gin.Context, mood string) {
	ctx.JSON(http.StatusOK, gin.H{
		"suggestions": c.suggestions.ByMood(mood),
	})
}

func (c *Controller) watchlistWS(ctx *gin.Context) {
	username := ctx.Query("username")
	if username == "" {
		username = model.GuestUsername
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket",
			slog.String("error", err.Error()),
		)
		return
	}

	client := ws_watchlist.NewClient(c.hub, conn, username)
	c.hub.RegisterClient(client)

	go client.StartReading()
	go client.StartWriting()
}

// parseEnvelope tolerates three payload forms: a JSON object, a
// string-encoded JSON object (possibly quote-wrapped), and anything
// else, which survives as {"raw": <text>} instead of failing the request.
func parseEnvelope(raw []byte) map[string]any {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return map[string]any{}
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(trimmed), &body); err == nil {
		return body
	}

	var inner string
	if err := json.Unmarshal([]byte(trimmed), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &body); err == nil {
			return body
		}
	}

	if err := json.Unmarshal([]byte(strings.Trim(trimmed, `"`)), &body); err == nil {
		return body
	}

	return map[string]any{"raw": trimmed}
}

func field(body map[string]any, key, defaultValue string) string {
	v, ok := body[key]
	if !ok {
		return defaultValue
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return defaultValue
	}
	return s
}
