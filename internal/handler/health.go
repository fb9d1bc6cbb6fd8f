package handler

import (
	"context"
	"net/http"
	"time"

	"petlovers/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BoasVindas is the /api liveness endpoint the frontend pings on load: a
// fixed welcome message, always 200.
func BoasVindas() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bem-vindo à API do Petshop PetLovers!"})
	}
}

// Health checks DB and Redis connectivity; never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		// Dead-lettered report jobs: growing depth means the cache refresh
		// keeps failing while reads fall back to SQL.
		var dlqDepth int64
		if redisStatus == "connected" {
			dlqDepth, _ = worker.DLQLength(ctx, rdb)
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"db":       dbStatus,
			"redis":    redisStatus,
			"dlqDepth": dlqDepth,
		})
	}
}
