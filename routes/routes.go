package routes

import (
	"net/http"

	"menara/activities"
	"menara/admin"
	"menara/ads"
	"menara/auth"
	"menara/favorites"
	"menara/itinerary"
	"menara/middleware"
	"menara/ratelim"
	"menara/reviews"
	"menara/search"
	"menara/share"
	"menara/utils"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/activitypic/*filepath", http.Dir("static/activitypic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddActivityRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/activities/all", activities.GetActivities)
	router.GET("/api/activities/activity/:activityid", activities.GetActivity)
	router.GET("/api/activities/categories", activities.GetCategories)
	router.POST("/api/activities/activity", rl.Limit(middleware.Authenticate(activities.CreateActivity)))
	router.PUT("/api/activities/activity/:activityid", middleware.Authenticate(activities.EditActivity))
	router.DELETE("/api/activities/activity/:activityid", middleware.RequireRole("admin", activities.DeleteActivity))
	router.POST("/api/activities/activity/:activityid/photo", rl.Limit(middleware.Authenticate(activities.UploadActivityPhoto)))
}

func AddSearchRoutes(router *httprouter.Router) {
	router.GET("/api/search/activities", search.SearchActivities)
}

func AddFavoritesRoutes(router *httprouter.Router) {
	router.POST("/api/favorites/:activityid", middleware.Authenticate(favorites.ToggleFavorite))
	router.GET("/api/favorites", middleware.Authenticate(favorites.GetFavorites))
}

func AddReviewsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/reviews/:activityid", reviews.GetReviews)
	router.POST("/api/reviews/:activityid", rl.Limit(middleware.Authenticate(reviews.AddReview)))
	router.DELETE("/api/reviews/:activityid/:reviewid", middleware.Authenticate(reviews.DeleteReview))
}

func AddAdsRoutes(router *httprouter.Router) {
	router.GET("/api/ads", ads.GetAds)
	router.GET("/api/offers", ads.GetOffers)
}

func AddShareRoutes(router *httprouter.Router) {
	router.GET("/api/share/:entitytype/:entityid", share.GetShareLink)
	router.GET("/api/share/:entitytype/:entityid/qr", share.GetShareQR)
}

func AddItineraryRoutes(router *httprouter.Router, svc *itinerary.Service, rl *ratelim.RateLimiter) {
	router.POST("/api/itinerary/generate", rl.Limit(middleware.OptionalAuth(svc.Generate)))
	router.POST("/api/itinerary/save", middleware.Authenticate(svc.Save))
	router.GET("/api/itinerary/all", middleware.Authenticate(svc.GetItineraries))
	router.GET("/api/itinerary/one/:id", middleware.OptionalAuth(svc.GetItinerary))
	router.DELETE("/api/itinerary/one/:id", middleware.Authenticate(svc.DeleteItinerary))
	router.GET("/api/itinerary/print/:id", middleware.OptionalAuth(svc.PrintItinerary))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/activities/pending", middleware.RequireRole("admin", admin.GetPendingActivities))
	router.PUT("/api/admin/activities/:activityid/approve", middleware.RequireRole("admin", admin.ApproveActivity))
	router.DELETE("/api/admin/activities/:activityid/reject", middleware.RequireRole("admin", admin.RejectActivity))
	router.GET("/api/admin/stats", middleware.RequireRole("admin", admin.GetStats))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/api/csrf", utils.CSRF)
}
