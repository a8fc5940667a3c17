package consts

const (
	// ApplicationName 健康检查与启动信息中展示的服务名
	ApplicationName = "Photo Management API"

	ApplicationVersion = "1.0.0"
)
