package extend

import (
	"context"
	"runtime"
	"sync"

	"github.com/injoyai/base/chans"
	"github.com/injoyai/logs"
	"github.com/taoquant/taoquant"
	"github.com/taoquant/taoquant/tushare"
	"github.com/taoquant/taoquant/wencai"
)

type PullLimitupConfig struct {
	DayLength int //最多回补的交易日数,默认30
	Workers   int //并发数,默认2倍cpu
}

// NewPullLimitup 拉取涨停股
// 对比daily_data的交易日和up_limit_stocks已有的日期,按缺口逐日拉取
func NewPullLimitup(cfg PullLimitupConfig) *PullLimitup {
	if cfg.DayLength <= 0 {
		cfg.DayLength = 30
	}
	return &PullLimitup{Config: cfg}
}

type PullLimitup struct {
	Config PullLimitupConfig

	//数据来源,默认问财,方便测试时替换
	Fetch func(ctx context.Context, tradeDate string) ([]*taoquant.UpLimitStock, error)
}

// Result 单个交易日的处理结果
type Result struct {
	TradeDate string
	Err       error
}

func (this *PullLimitup) Name() string {
	return "拉取涨停数据"
}

func (this *PullLimitup) Run(ctx context.Context, m *taoquant.Manage) ([]Result, error) {

	fetch := this.Fetch
	if fetch == nil {
		fetch = func(ctx context.Context, tradeDate string) ([]*taoquant.UpLimitStock, error) {
			return FetchWencai(ctx, m.Wencai, tradeDate)
		}
	}

	//1. 计算还没拉取的交易日
	done, err := taoquant.TradeDatesDone(m.DB)
	if err != nil {
		return nil, err
	}
	if err := m.Workday.Update(); err != nil {
		return nil, err
	}
	dates := m.Workday.Missing(done, this.Config.DayLength)

	workers := this.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	if workers > len(dates) && len(dates) > 0 {
		workers = len(dates)
	}

	//2. 逐日并发拉取,单日失败不影响其他日期
	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(dates))
		limit   = chans.NewWaitLimit(workers)
	)
	for _, v := range dates {
		select {
		case <-ctx.Done():
			//取消后不再调度新的日期,已开始的要等到终态才能返回
			limit.Wait()
			return results, ctx.Err()
		default:
		}

		limit.Add()
		go func(date string) {
			defer limit.Done()
			err := this.pull(ctx, m, fetch, date)
			logs.PrintErr(err)
			mu.Lock()
			results = append(results, Result{TradeDate: date, Err: err})
			mu.Unlock()
		}(v)
	}
	limit.Wait()

	return results, nil
}

func (this *PullLimitup) pull(ctx context.Context, m *taoquant.Manage, fetch func(ctx context.Context, tradeDate string) ([]*taoquant.UpLimitStock, error), date string) error {

	//1. 从服务器获取数据
	list, err := fetch(ctx, date)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		logs.Debugf("交易日%s没有涨停数据\n", date)
		return nil
	}

	//2. 插入数据库
	for _, v := range list {
		v.TradeDate = date
	}
	_, err = taoquant.UpsertUpLimit(m.DB, list)
	return err
}

// FetchWencai 从问财获取涨停股
func FetchWencai(ctx context.Context, c *wencai.Client, tradeDate string) ([]*taoquant.UpLimitStock, error) {
	stocks, err := c.GetUpLimit(ctx, tradeDate)
	if err != nil {
		return nil, err
	}
	ls := make([]*taoquant.UpLimitStock, 0, len(stocks))
	for _, v := range stocks {
		ls = append(ls, &taoquant.UpLimitStock{
			TradeDate:   tradeDate,
			TsCode:      v.Code,
			StockName:   v.Name,
			UpLimitTime: v.FirstTime,
		})
	}
	return ls, nil
}

// FetchTushare 从tushare获取涨停股,问财不可用时的备选
func FetchTushare(ctx context.Context, c *tushare.Client, tradeDate string) ([]*taoquant.UpLimitStock, error) {
	list, err := c.LimitListD(ctx, tradeDate)
	if err != nil {
		return nil, err
	}
	ls := make([]*taoquant.UpLimitStock, 0, len(list))
	for _, v := range list {
		ls = append(ls, &taoquant.UpLimitStock{
			TradeDate:   tradeDate,
			TsCode:      v.TsCode,
			StockName:   v.Name,
			UpLimitTime: v.FirstTime,
		})
	}
	return ls, nil
}
