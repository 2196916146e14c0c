// canvasctl 是 Canvas 数据访问层的命令行入口：按主键读取实体、沿命名边导航、校验数据库结构。
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
