package main

import (
	"fmt"

	"larpit/larp-directory/config"
	"larpit/larp-directory/internal/database"
	"larpit/larp-directory/internal/route"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库
	database.InitDatabase()

	// 3. 设置路由
	r := route.SetupRouter()

	// 4. 启动服务
	port := config.Conf.Server.Port
	if port == 0 {
		port = 8080
	}
	r.Run(fmt.Sprintf(":%d", port))
}
