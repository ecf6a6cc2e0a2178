package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"larpit/larp-directory/config"
	"larpit/larp-directory/internal/database"
	"larpit/larp-directory/internal/larp"
	larpmodel "larpit/larp-directory/internal/model/larp"
	"larpit/larp-directory/internal/moderation"
	"larpit/larp-directory/internal/user"
	"larpit/larp-directory/pkg/email"
)

// newNotifier 按配置组装通知器
// SMTP 未配置时 sender 为 nil：非生产环境打日志放行，生产环境在配置校验阶段就已拦下
func newNotifier() moderation.Notifier {
	var sender moderation.MailSender
	if config.Conf.Smtp.Host != "" {
		sender = email.NewClient(&config.Conf.Smtp)
	}
	return moderation.NewMailNotifier(sender, config.Conf.App.BaseURL, config.Conf.App.IsProduction())
}

func initRoute(r *gin.Engine) {
	db := database.GetDB()
	api := r.Group("/api")

	larp.SetupRoutes(api, db)
	moderation.SetupRoutes(api, db, database.RedisDB, newNotifier(),
		larpmodel.Language(config.Conf.App.DefaultLanguage))
	user.SetupRoutes(api, db)
}

func SetupRouter() *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r)

	return r
}
