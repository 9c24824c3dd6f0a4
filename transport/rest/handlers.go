package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/view"
)

const indexTemplate = "index.html"

type gameController interface {
	Place(cell int) bool
	Reset()

	Board() entity.Board
	Turn() string
	Verdict() entity.Verdict
}

// gameHandler - owns the single game of the page. The controller itself is
// not goroutine safe, every access goes through mu.
type gameHandler struct {
	logger *slog.Logger

	mu   sync.Mutex
	game gameController
}

func newGameHandler(logger *slog.Logger, game gameController) *gameHandler {
	return &gameHandler{
		logger: logger.With("component", "game_handler"),
		game:   game,
	}
}

func (that *gameHandler) snapshot() view.Page {
	that.mu.Lock()
	defer that.mu.Unlock()

	return view.Build(that.game)
}

func (that *gameHandler) index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, that.snapshot())
}

func (that *gameHandler) state(c *gin.Context) {
	c.JSON(http.StatusOK, that.snapshot())
}

func (that *gameHandler) place(c *gin.Context) {
	log := that.logger.With("method", "place")

	param := c.Param("index")
	cell, err := strconv.Atoi(param)
	if err != nil {
		err = fmt.Errorf("%w: %q", apperror.ErrInvalidCell, param)
		log.Warn("bad cell parameter", "error", err)
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	that.mu.Lock()
	applied := that.game.Place(cell)
	page := view.Build(that.game)
	that.mu.Unlock()

	// rejected placements are expected (double clicks, clicks after the end)
	log.Debug("cell played", "cell", cell, "applied", applied, "status", page.Verdict.Status)

	that.respond(c, page)
}

func (that *gameHandler) reset(c *gin.Context) {
	that.mu.Lock()
	that.game.Reset()
	page := view.Build(that.game)
	that.mu.Unlock()

	that.logger.Debug("game reset")

	that.respond(c, page)
}

// respond - JSON clients get the new state, browsers are sent back to the page.
func (that *gameHandler) respond(c *gin.Context, page view.Page) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, page)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
