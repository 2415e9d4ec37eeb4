// embed.go - 数据嵌入声明
// 必须放在项目根目录（与 data/ 同级），//go:embed 只能嵌入当前包目录下的文件
package main

import "embed"

//go:embed data/sliders.yaml data/slider_skin.yaml
var dataFS embed.FS
