package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/idiom-learning-backend/controllers"
	"github.com/vnkhanh/idiom-learning-backend/middleware"
	"github.com/vnkhanh/idiom-learning-backend/ws"
	"gorm.io/gorm"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)
	}

	// Dataset + câu hỏi: public, có token thì kèm trạng thái hoàn thành
	public := api.Group("")
	{
		public.Use(middleware.OptionalAuthMiddleware())

		public.GET("/idioms", controllers.GetIdioms)
		public.GET("/idioms/categories", controllers.GetIdiomCategories)
		public.GET("/sessions", controllers.GetSessions)
		public.GET("/sessions/:id/idioms", controllers.GetSessionIdioms)
		public.GET("/sessions/:id/questions", controllers.GetSessionQuestions)
	}

	user := api.Group("/user")
	{
		user.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))

		// Tiến độ học
		user.POST("/progress/sessions/:id", controllers.SaveSessionProgress)
		user.GET("/progress/sessions/:id", controllers.GetSessionProgress)
		user.GET("/progress", controllers.GetAllProgress)
		user.GET("/progress/stats", controllers.GetOverallStats)
		user.GET("/progress/categories", controllers.GetCategoryProgress)

		// Từ đã lưu
		user.POST("/saved-words/:idiom_id", controllers.SaveWord)
		user.DELETE("/saved-words/:idiom_id", controllers.RemoveSavedWord)
		user.GET("/saved-words", controllers.GetSavedWords)
		user.GET("/saved-words/:idiom_id/check", controllers.CheckSavedWord)

		// Đọc idiom / câu ví dụ
		user.POST("/tts", controllers.TextToSpeechHandler)

		// Tài khoản
		user.GET("/me", controllers.GetMe)
		user.PUT("/me", controllers.UpdateMe)
		user.POST("/me/avatar", controllers.UploadAvatar)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db), middleware.RequireRoles("admin"))

		// Quản lý dataset idiom
		admin.POST("/idioms", controllers.CreateIdiom)
		admin.PUT("/idioms/:id", controllers.UpdateIdiom)
		admin.DELETE("/idioms/:id", controllers.DeleteIdiom)
		admin.POST("/idioms/:id/example", controllers.RegenerateIdiomExample)
		admin.POST("/idioms/import", controllers.ImportIdioms)
	}

	r.GET("/ws/progress", ws.HandleProgressWebSocket)

	return r
}
