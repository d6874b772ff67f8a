package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minerco/server/audit"
	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/game/economy"
	mw "github.com/minerco/server/middleware"
	"github.com/minerco/server/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GameHandler exposes the economy engine over REST. Every action loads
// the caller's player row inside a transaction, runs the engine against
// it, and persists the whole record — one action, one transaction.
type GameHandler struct {
	db     *gorm.DB
	engine *economy.Engine
	audit  *audit.Service
	logger *zap.Logger
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(db *gorm.DB, engine *economy.Engine, auditSvc *audit.Service, logger *zap.Logger) *GameHandler {
	return &GameHandler{db: db, engine: engine, audit: auditSvc, logger: logger}
}

// withPlayer runs fn against the caller's player record inside a
// transaction. If fn returns an error the transaction rolls back and
// the record is left untouched; otherwise the updated record is saved
// and fn's result is returned to the client. Every call is audited.
func (h *GameHandler) withPlayer(c *gin.Context, action string, req interface{}, fn func(p *model.Player) (interface{}, error)) {
	accountID := mw.GetAccountID(c)
	if accountID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start := time.Now()
	var result interface{}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var p model.Player
		if err := tx.Where("account_id = ?", accountID).First(&p).Error; err != nil {
			return err
		}
		out, err := fn(&p)
		if err != nil {
			return err
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		result = out
		return nil
	})

	entry := audit.Entry{
		TraceID:    mw.GetTraceID(c),
		AccountID:  &accountID,
		Action:     action,
		Request:    req,
		Response:   result,
		IP:         c.ClientIP(),
		DurationMs: int(time.Since(start).Milliseconds()),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	h.audit.Log(entry)

	if err != nil {
		abortEngineErr(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPlayer handles GET /api/player.
func (h *GameHandler) GetPlayer(c *gin.Context) {
	accountID := mw.GetAccountID(c)
	if accountID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var p model.Player
	if err := h.db.Where("account_id = ?", accountID).First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	c.JSON(http.StatusOK, &p)
}

type mineRequest struct {
	Ore string `json:"ore" binding:"required"`
}

// Mine handles POST /api/mine.
func (h *GameHandler) Mine(c *gin.Context) {
	var req mineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := time.Now()
	rng := economy.NewSeededRand()
	h.withPlayer(c, "mine", req, func(p *model.Player) (interface{}, error) {
		return h.engine.Mine(p, catalog.OreID(req.Ore), now, rng)
	})
}

// SellAll handles POST /api/sell.
func (h *GameHandler) SellAll(c *gin.Context) {
	now := time.Now()
	h.withPlayer(c, "sell_all", nil, func(p *model.Player) (interface{}, error) {
		return h.engine.SellAll(p, now)
	})
}

type pickaxeRequest struct {
	Tier string `json:"tier" binding:"required"`
}

// BuyPickaxe handles POST /api/shop/pickaxe.
func (h *GameHandler) BuyPickaxe(c *gin.Context) {
	var req pickaxeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withPlayer(c, "buy_pickaxe", req, func(p *model.Player) (interface{}, error) {
		return h.engine.UpgradePickaxe(p, catalog.OreID(req.Tier))
	})
}

type swordRequest struct {
	Tier string `json:"tier" binding:"required"`
}

// BuySword handles POST /api/shop/sword.
func (h *GameHandler) BuySword(c *gin.Context) {
	var req swordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withPlayer(c, "buy_sword", req, func(p *model.Player) (interface{}, error) {
		return h.engine.BuySword(p, catalog.SwordTier(req.Tier))
	})
}

type powerupRequest struct {
	Name string `json:"name" binding:"required"`
}

// BuyPowerup handles POST /api/shop/powerup.
func (h *GameHandler) BuyPowerup(c *gin.Context) {
	var req powerupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := time.Now()
	h.withPlayer(c, "buy_powerup", req, func(p *model.Player) (interface{}, error) {
		return h.engine.BuyPowerup(p, req.Name, now)
	})
}

// SpinPet handles POST /api/pets/spin.
func (h *GameHandler) SpinPet(c *gin.Context) {
	rng := economy.NewSeededRand()
	h.withPlayer(c, "spin_pet", nil, func(p *model.Player) (interface{}, error) {
		return h.engine.SpinPet(p, false, rng)
	})
}

type redeemRequest struct {
	Code string `json:"code"`
}

// RedeemCode handles POST /api/codes/redeem. A code that grants a free
// spin performs the spin in the same transaction, so the client sees the
// rolled pet in the response.
func (h *GameHandler) RedeemCode(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := time.Now()
	rng := economy.NewSeededRand()
	h.withPlayer(c, "redeem_code", req, func(p *model.Player) (interface{}, error) {
		res, err := h.engine.RedeemCode(p, req.Code, now)
		if err != nil {
			return nil, err
		}
		if res.FreeSpin {
			spin, err := h.engine.SpinPet(p, true, rng)
			if err != nil {
				return nil, err
			}
			return gin.H{"code": res.Code, "message": res.Message, "spin": spin}, nil
		}
		return res, nil
	})
}

// ClaimDaily handles POST /api/daily/claim.
func (h *GameHandler) ClaimDaily(c *gin.Context) {
	now := time.Now()
	rng := economy.NewSeededRand()
	h.withPlayer(c, "claim_daily", nil, func(p *model.Player) (interface{}, error) {
		return h.engine.ClaimDaily(p, now, rng)
	})
}
