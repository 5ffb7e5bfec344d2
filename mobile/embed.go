//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 构建前需要将 data/score.yaml 复制到此目录：
//
//	mkdir -p mobile/data && cp data/score.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/score.yaml
var dataFS embed.FS
