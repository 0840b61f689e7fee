package server

import (
	handler "asset-marketplace/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService handler.MarketServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(marketService)

	items := router.Group("/items")
	{
		items.POST("", marketHandler.MintItemHandler)
		items.GET("/:asset_id", marketHandler.GetItemHandler)
		items.POST("/:asset_id/burn", marketHandler.BurnItemHandler)
	}

	sales := router.Group("/sales")
	{
		sales.POST("", marketHandler.ListSaleHandler)
		sales.GET("/:asset_id", marketHandler.GetSaleOrderHandler)
		sales.POST("/:asset_id/buy", marketHandler.BuySaleHandler)
		sales.POST("/:asset_id/cancel", marketHandler.CancelSaleHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", marketHandler.ListAuctionHandler)
		auctions.GET("/:asset_id", marketHandler.GetAuctionOrderHandler)
		auctions.POST("/:asset_id/bids", marketHandler.PlaceBidHandler)
		auctions.POST("/:asset_id/finish", marketHandler.FinishAuctionHandler)
		auctions.POST("/:asset_id/cancel", marketHandler.CancelAuctionHandler)
	}

	router.GET("/parameters", marketHandler.GetParametersHandler)

	admin := router.Group("/admin")
	{
		admin.PUT("/mint-price", marketHandler.SetMintPriceHandler)
		admin.PUT("/auction-duration", marketHandler.SetAuctionDurationHandler)
		admin.PUT("/minimum-bid-count", marketHandler.SetMinimumBidCountHandler)
		admin.POST("/withdraw", marketHandler.WithdrawHandler)
	}

	return router
}
