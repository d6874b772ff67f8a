package rest

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	mw "github.com/minerco/server/middleware"
	"github.com/minerco/server/model"
	"github.com/minerco/server/scheduler"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminHandler handles admin-only REST endpoints. Unlock elevates the
// caller's own record with the shared admin key; the grant endpoints
// require an already-elevated record and go through the engine so the
// admin flag is checked in one place.
type AdminHandler struct {
	db       *gorm.DB
	game     *GameHandler
	sched    *scheduler.Scheduler
	adminKey string
	logger   *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(db *gorm.DB, game *GameHandler, sched *scheduler.Scheduler, adminKey string, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{db: db, game: game, sched: sched, adminKey: adminKey, logger: logger}
}

type unlockRequest struct {
	Key string `json:"key" binding:"required"`
}

// Unlock handles POST /api/admin/unlock. A correct key flips the
// caller's admin flag; a wrong key is indistinguishable from a
// disabled deployment.
func (h *AdminHandler) Unlock(c *gin.Context) {
	var req unlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(req.Key), []byte(h.adminKey)) != 1 {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	accountID := mw.GetAccountID(c)
	h.game.withPlayer(c, "admin_unlock", nil, func(p *model.Player) (interface{}, error) {
		p.IsAdmin = true
		h.logger.Info("admin unlocked", zap.Int64("account_id", accountID))
		return gin.H{"is_admin": true}, nil
	})
}

// GrantSilver handles POST /api/admin/silver.
func (h *AdminHandler) GrantSilver(c *gin.Context) {
	h.game.withPlayer(c, "admin_silver", nil, func(p *model.Player) (interface{}, error) {
		balance, err := h.game.engine.GrantSilver(p)
		if err != nil {
			return nil, err
		}
		return gin.H{"silver": balance}, nil
	})
}

// GrantPowerups handles POST /api/admin/powerups.
func (h *AdminHandler) GrantPowerups(c *gin.Context) {
	h.game.withPlayer(c, "admin_powerups", nil, func(p *model.Player) (interface{}, error) {
		if err := h.game.engine.GrantAllPowerups(p, time.Now()); err != nil {
			return nil, err
		}
		return gin.H{"powerups": p.Powerups}, nil
	})
}

// BanAccount bans or unbans a player account.
// POST /api/admin/accounts/:id/ban
func (h *AdminHandler) BanAccount(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Ban bool `json:"ban"`
	}
	_ = c.ShouldBindJSON(&req)

	status := 1
	if req.Ban {
		status = 0
	}
	result := h.db.Model(&model.Account{}).Where("id = ?", accountID).Update("status", status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": status})
}

// ListSchedulerTasks returns names of all registered ticker tasks.
// GET /api/admin/scheduler
func (h *AdminHandler) ListSchedulerTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": h.sched.ListTickers()})
}

// AdminAuth returns a middleware that checks the X-Admin-Key header.
// WARNING: if adminKey is empty all admin endpoints are disabled (503) so the
// server cannot be accidentally deployed without protection. Set a non-empty
// security.admin_key in config to enable admin routes.
func AdminAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				gin.H{"error": "admin endpoints disabled: set security.admin_key in config"})
			return
		}
		key := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
