// @title TalentScout API
// @version 1.0
// @description 候选人筛选服务：简历摘要、AI面试问题、筛选报告与管理端查询。

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"talentscout_backend/internal/app"
	"talentscout_backend/internal/config"
	"talentscout_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	adminUser := flag.String("admin-user", "", "更新管理员账号（需配合 -admin-password，完成后退出）")
	adminPassword := flag.String("admin-password", "", "新的管理员密码")
	flag.Parse()

	// .env 中的 GOOGLE_API_KEY 决定生成模式
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 管理员凭据更新只走命令行，不暴露 HTTP 接口
	if *adminUser != "" {
		if *adminPassword == "" {
			log.Fatal("-admin-user requires -admin-password")
		}
		if err := application.UpsertAdmin(*adminUser, *adminPassword); err != nil {
			log.Fatalf("Failed to upsert admin: %v", err)
		}
		log.Printf("Admin account %q updated", *adminUser)
		return
	}

	application.Run()
}
