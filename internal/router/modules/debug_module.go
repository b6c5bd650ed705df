package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghost-labs/ghost-auth/internal/container"
	handlers "github.com/ghost-labs/ghost-auth/internal/interface/http"
	"github.com/ghost-labs/ghost-auth/internal/interface/middleware"
)

type DebugModule struct {
	System *handlers.SystemHandler
}

func NewDebugModule(sys *handlers.SystemHandler) *DebugModule { return &DebugModule{System: sys} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/files", rl, m.System.DebugFiles)
	if container.GetConfig().DebugMetricsEnabled {
		rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	}
}
