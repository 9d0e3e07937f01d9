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

	err = extend.NewPullDaily(extend.PullDailyConfig{
		EndDate:   m.Config.FirstEndDay,
		DayLength: m.Config.DayLength,
	}).Run(context.Background(), m)
	logs.PanicErr(err)

	logs.Debug("done")
}
