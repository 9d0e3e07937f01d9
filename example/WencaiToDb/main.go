package main

import (
	"context"

	"github.com/injoyai/logs"
	"github.com/taoquant/taoquant"
	"github.com/taoquant/taoquant/extend"
)

func main() {

	m, err := taoquant.NewManage(nil)
	logs.PanicErr(err)
	defer m.Close()

	results, err := extend.NewPullLimitup(extend.PullLimitupConfig{
		DayLength: m.Config.DayLength,
	}).Run(context.Background(), m)
	logs.PanicErr(err)

	succ := 0
	for _, v := range results {
		if v.Err == nil {
			succ++
			//导出当日涨停到csv,目录没配置则跳过
			if m.Config.ExportDir != "" {
				filename, err := extend.ExportUpLimit(m.DB, v.TradeDate, m.Config.ExportDir)
				if err == nil {
					logs.Info("导出:", filename)
				}
				logs.PrintErr(err)
			}
		}
	}
	logs.Info("涨停数据拉取完成, 成功:", succ, " 失败:", len(results)-succ)
}
