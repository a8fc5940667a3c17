// Command ingest seeds the default admin account and loads the photo dataset
// CSV into the catalog database.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/db"
	"photo-catalog-server/internal/di"
	"photo-catalog-server/internal/logging"
)

func main() {
	configDir := flag.String("config", "config", "配置文件所在目录")
	csvPath := flag.String("csv", "", "CSV 文件路径，默认使用 ingest.csv_path")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	logging.SetDefault(logger)

	db.InitDB()

	ingester, err := di.InitializeIngester(db.DB, cfg, logger)
	if err != nil {
		log.Fatalf("❌ 初始化导入工具失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := ingester.Run(ctx, *csvPath)
	if err != nil {
		log.Printf("❌ 导入失败: %v", err)
		stop()
		os.Exit(1)
	}
	log.Printf("✅ 导入完成: 新增 %d 张，跳过 %d 张", report.Inserted, report.Skipped)
}
