package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/consts"
	"photo-catalog-server/internal/db"
	"photo-catalog-server/internal/di"
	"photo-catalog-server/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "config", "配置文件所在目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	logging.SetDefault(logger)
	gin.SetMode(cfg.Server.Mode)

	db.InitDB()

	app, cleanup, err := di.InitializeApplication(db.DB, cfg, logger)
	if err != nil {
		log.Fatalf("❌ 应用初始化失败: %v", err)
	}
	defer cleanup()

	r := app.Router.NewEngine()

	// 导出模式
	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			log.Fatalf("❌ 导出路由失败: %v", err)
		}
		log.Println("✅ 路由已成功导出到 routes.json")
		return
	}

	printWelcomeMessage(cfg)

	srv := newServer(cfg.Server, r)

	go func() {
		log.Printf("🚀 服务启动成功，运行在 :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ 服务强制关闭: %v", err)
		return
	}
	log.Println("✅ 服务已退出")
}

func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func printWelcomeMessage(cfg config.Config) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️  数据库   : %s\n", cfg.Database.Type)
	fmt.Printf(" │   🔥  服务端口 : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

// RouteInfo 导出的路由信息，只保留关键字段
type RouteInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, path string) error {
	routes := r.Routes()
	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, file, 0644)
}
