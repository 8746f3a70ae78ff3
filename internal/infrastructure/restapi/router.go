package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter wires every handler onto a new gin engine.
func SetupRouter(owned *OwnedObjectsHandler, explorer *ExplorerHandler, zapLogger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))
	router.Use(ZapLoggerMiddleware(zapLogger))
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/owners/:ownerId/objects", owned.GetOwnedObjectsHandler)
		v1.GET("/owners/:ownerId/staking", explorer.GetStakingHandler)
		v1.GET("/packages/:packageId/modules", explorer.GetModulesHandler)
		v1.GET("/networks", explorer.ListNetworksHandler)

		panels := v1.Group("/panels")
		panels.POST("", owned.CreatePanelHandler)
		panels.GET("/:panelId", owned.GetPanelHandler)
		panels.DELETE("/:panelId", owned.DeletePanelHandler)
		panels.PUT("/:panelId/inputs", owned.SetInputsHandler)
		panels.PUT("/:panelId/coins/page", owned.SetCoinPageHandler)
		panels.PUT("/:panelId/coins/expanded", owned.ExpandGroupHandler)
		panels.DELETE("/:panelId/coins/expanded", owned.CollapseGroupHandler)
		panels.PUT("/:panelId/nfts/page", owned.SetNFTPageHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
