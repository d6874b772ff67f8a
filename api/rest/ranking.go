package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/minerco/server/cache"
	"github.com/minerco/server/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RankingHandler handles leaderboard REST endpoints.
type RankingHandler struct {
	db     *gorm.DB
	cache  cache.Cache
	logger *zap.Logger
	top    int
}

// NewRankingHandler creates a RankingHandler. top caps how many rows
// the sorted set holds and how many a single request may return.
func NewRankingHandler(db *gorm.DB, c cache.Cache, logger *zap.Logger, top int) *RankingHandler {
	if top <= 0 {
		top = 100
	}
	return &RankingHandler{db: db, cache: c, logger: logger, top: top}
}

const rankingZKey = "ranking:silver"

// RankEntry is one row in the leaderboard.
type RankEntry struct {
	Rank      int    `json:"rank"`
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	Silver    int64  `json:"silver"`
}

// TopSilver returns the richest players sorted by silver balance.
// GET /api/ranking/silver?limit=20
func (h *RankingHandler) TopSilver(c *gin.Context) {
	limit := 20
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= h.top {
		limit = l
	}

	// Try cached ranking from sorted set.
	ctx := c.Request.Context()
	members, err := h.cache.ZRevRange(ctx, rankingZKey, 0, int64(limit-1))
	if err == nil && len(members) > 0 {
		entries := make([]RankEntry, 0, len(members))
		for i, m := range members {
			accountID, err := strconv.ParseInt(m, 10, 64)
			if err != nil {
				continue
			}
			score, _ := h.cache.ZScore(ctx, rankingZKey, m)
			entries = append(entries, RankEntry{
				Rank:      i + 1,
				AccountID: accountID,
				Silver:    int64(score),
			})
		}
		h.enrichNames(entries)
		c.JSON(http.StatusOK, gin.H{"ranking": entries})
		return
	}

	// Fall back to DB query.
	entries := h.queryTop(ctx, limit)
	c.JSON(http.StatusOK, gin.H{"ranking": entries})
}

// Refresh rebuilds the ranking sorted set from the DB. Called
// periodically by the scheduler and from the admin refresh endpoint.
func (h *RankingHandler) Refresh(ctx context.Context) (int, error) {
	var players []model.Player
	if err := h.db.Select("account_id, silver").
		Order("silver DESC").
		Limit(h.top).
		Find(&players).Error; err != nil {
		return 0, err
	}
	for _, p := range players {
		_ = h.cache.ZAdd(ctx, rankingZKey, float64(p.Silver), strconv.FormatInt(p.AccountID, 10))
	}
	return len(players), nil
}

// RefreshRanking handles POST /api/admin/ranking/refresh.
func (h *RankingHandler) RefreshRanking(c *gin.Context) {
	n, err := h.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"refreshed": n})
}

// queryTop reads the leaderboard straight from the DB, refreshing the
// sorted set as a side effect.
func (h *RankingHandler) queryTop(ctx context.Context, limit int) []RankEntry {
	type row struct {
		AccountID int64
		Silver    int64
		Username  string
	}
	var rows []row
	h.db.Model(&model.Player{}).
		Select("players.account_id, players.silver, accounts.username").
		Joins("JOIN accounts ON accounts.id = players.account_id").
		Order("players.silver DESC").
		Limit(limit).
		Scan(&rows)

	entries := make([]RankEntry, len(rows))
	for i, r := range rows {
		entries[i] = RankEntry{
			Rank:      i + 1,
			AccountID: r.AccountID,
			Username:  r.Username,
			Silver:    r.Silver,
		}
		_ = h.cache.ZAdd(ctx, rankingZKey, float64(r.Silver), strconv.FormatInt(r.AccountID, 10))
	}
	return entries
}

func (h *RankingHandler) enrichNames(entries []RankEntry) {
	if len(entries) == 0 {
		return
	}
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.AccountID
	}
	var accs []model.Account
	h.db.Select("id, username").Where("id IN ?", ids).Find(&accs)
	nameMap := make(map[int64]string, len(accs))
	for _, a := range accs {
		nameMap[a.ID] = a.Username
	}
	for i := range entries {
		entries[i].Username = nameMap[entries[i].AccountID]
	}
}
