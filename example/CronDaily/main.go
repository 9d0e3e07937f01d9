package main

import (
	"context"

	"github.com/injoyai/conv/cfg"
	"github.com/injoyai/logs"
	"github.com/taoquant/taoquant"
	"github.com/taoquant/taoquant/extend"
)

var (
	Spec    = cfg.GetString("spec", "0 30 17 * * *")
	Startup = cfg.GetBool("startup")
)

func init() {
	logs.SetFormatter(logs.TimeFormatter)
	logs.Info("任务规则:", Spec)
	logs.Info("立马执行:", Startup)
}

func main() {

	m, err := taoquant.NewManage(nil)
	logs.PanicErr(err)
	defer m.Close()

	f := func(m *taoquant.Manage) {

		logs.Info("更新日线...")
		err := extend.NewPullDaily(extend.PullDailyConfig{
			DayLength: m.Config.DayLength,
		}).Run(context.Background(), m)
		logs.PrintErr(err)

		logs.Info("更新涨停...")
		_, err = extend.NewPullLimitup(extend.PullLimitupConfig{
			DayLength: m.Config.DayLength,
		}).Run(context.Background(), m)
		logs.PrintErr(err)

		logs.Info("任务完成...")
	}

	//收盘后执行,日线先落库,涨停再按新交易日补缺口
	//交易日靠日线数据判断,这里不做工作日过滤,tushare非交易日返回空页
	m.Cron.AddFunc(Spec, func() { f(m) })

	if Startup {
		f(m)
	}

	m.Cron.Run()
}
