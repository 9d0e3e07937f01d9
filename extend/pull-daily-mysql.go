package extend

import (
	"context"
	"time"

	"github.com/injoyai/logs"
	"github.com/taoquant/taoquant"
	"github.com/taoquant/taoquant/tushare"
)

type PullDailyConfig struct {
	EndDate   string //起始的结束日期,空则为今天
	DayLength int    //往前回补的页数,默认30
}

// NewPullDaily 拉取日线行情和每日指标
// 从EndDate往前翻页,每页按tushare返回的日期范围推进游标
func NewPullDaily(cfg PullDailyConfig) *PullDaily {
	if cfg.EndDate == "" {
		cfg.EndDate = time.Now().Format("20060102")
	}
	if cfg.DayLength <= 0 {
		cfg.DayLength = 30
	}
	return &PullDaily{Config: cfg}
}

type PullDaily struct {
	Config PullDailyConfig

	//数据来源,默认tushare,方便测试时替换
	Daily      func(ctx context.Context, endDate string) ([]*tushare.Bar, error)
	DailyBasic func(ctx context.Context, endDate string) ([]*tushare.Basic, error)
}

func (this *PullDaily) Name() string {
	return "拉取日线数据"
}

func (this *PullDaily) Run(ctx context.Context, m *taoquant.Manage) error {

	daily := this.Daily
	if daily == nil {
		daily = func(ctx context.Context, endDate string) ([]*tushare.Bar, error) {
			return m.Tushare.Daily(ctx, endDate, "")
		}
	}
	dailyBasic := this.DailyBasic
	if dailyBasic == nil {
		dailyBasic = func(ctx context.Context, endDate string) ([]*tushare.Basic, error) {
			return m.Tushare.DailyBasic(ctx, endDate, "")
		}
	}

	//1. 刷新股票列表,失败不影响行情入库
	logs.PrintErr(m.Codes.Update())

	endDate := this.Config.EndDate
	for i := 0; i < this.Config.DayLength; i++ {

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		//2. 每日指标,失败只记录,不中断行情回补
		basics, err := dailyBasic(ctx, endDate)
		if err != nil {
			return err
		}
		if _, err := taoquant.UpsertDailyBasic(m.DB, toDailyBasic(basics)); err != nil {
			logs.Err(err)
		}

		//3. 日线行情
		bars, err := daily(ctx, endDate)
		if err != nil {
			return err
		}
		if len(bars) == 0 {
			//翻到了没有数据的日期,一般是到了数据起点
			logs.Debugf("日线%s之前无数据,结束回补\n", endDate)
			break
		}
		_, err = taoquant.UpsertDailyData(m.DB, toDailyData(bars))
		logs.PrintErr(err)

		//4. 游标推进到本页最早的交易日,重叠的一天靠幂等写入吸收
		endDate = earliest(bars)
	}

	//日线入库后刷新交易日缓存
	return m.Workday.Update()
}

// earliest 本页最早的交易日,接口返回倒序,但不依赖顺序
func earliest(bars []*tushare.Bar) string {
	date := bars[0].TradeDate
	for _, v := range bars {
		if v.TradeDate < date {
			date = v.TradeDate
		}
	}
	return date
}

func toDailyData(bars []*tushare.Bar) []*taoquant.DailyData {
	ls := make([]*taoquant.DailyData, 0, len(bars))
	for _, v := range bars {
		ls = append(ls, &taoquant.DailyData{
			TsCode:    v.TsCode,
			TradeDate: v.TradeDate,
			Open:      v.Open,
			High:      v.High,
			Low:       v.Low,
			Close:     v.Close,
			PreClose:  v.PreClose,
			Change:    v.Change,
			PctChg:    v.PctChg,
			Vol:       v.Vol,
			Amount:    v.Amount,
		})
	}
	return ls
}

func toDailyBasic(basics []*tushare.Basic) []*taoquant.DailyBasic {
	ls := make([]*taoquant.DailyBasic, 0, len(basics))
	for _, v := range basics {
		ls = append(ls, &taoquant.DailyBasic{
			TsCode:    v.TsCode,
			TradeDate: v.TradeDate,
			FreeShare: v.FreeShare,
			Close:     v.Close,
		})
	}
	return ls
}
