package tushare

import (
	"context"

	"github.com/injoyai/conv"
)

// Stock 股票基础信息,对应stock_basic接口
type Stock struct {
	TsCode   string //股票代码,例如600000.SH
	Symbol   string //股票代码,不带交易所后缀
	Name     string //股票名称
	Market   string //市场类型
	ListDate string //上市日期
}

// Bar 日线行情,对应daily接口
type Bar struct {
	TsCode    string
	TradeDate string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	PreClose  float64
	Change    float64 //涨跌额
	PctChg    float64 //涨跌幅
	Vol       float64 //成交量,手
	Amount    float64 //成交额,千元
}

// Basic 每日指标,对应daily_basic接口
type Basic struct {
	TsCode    string
	TradeDate string
	FreeShare float64 //自由流通股本,万股
	Close     float64
}

// Limit 涨停统计,对应limit_list_d接口
type Limit struct {
	TradeDate string
	TsCode    string
	Industry  string
	Name      string
	Close     float64
	PctChg    float64
	FirstTime string //首次涨停时间
	LastTime  string //最后涨停时间
	OpenTimes int    //开板次数
}

// StockBasic 获取全部股票列表
func (this *Client) StockBasic(ctx context.Context) ([]*Stock, error) {
	result, err := this.Do(ctx, "stock_basic", nil, "ts_code,symbol,name,market,list_date")
	if err != nil {
		return nil, err
	}
	var (
		iCode     = result.Index("ts_code")
		iSymbol   = result.Index("symbol")
		iName     = result.Index("name")
		iMarket   = result.Index("market")
		iListDate = result.Index("list_date")
	)
	ls := make([]*Stock, 0, len(result.Items))
	for _, row := range result.Items {
		ls = append(ls, &Stock{
			TsCode:   str(row, iCode),
			Symbol:   str(row, iSymbol),
			Name:     str(row, iName),
			Market:   str(row, iMarket),
			ListDate: str(row, iListDate),
		})
	}
	return ls, nil
}

// Daily 获取日线行情,接口按结束日期返回一页,倒序
func (this *Client) Daily(ctx context.Context, endDate, tsCode string) ([]*Bar, error) {
	result, err := this.Do(ctx, "daily",
		map[string]any{"ts_code": tsCode, "end_date": endDate},
		"ts_code,trade_date,open,high,low,close,pre_close,change,pct_chg,vol,amount")
	if err != nil {
		return nil, err
	}
	var (
		iCode     = result.Index("ts_code")
		iDate     = result.Index("trade_date")
		iOpen     = result.Index("open")
		iHigh     = result.Index("high")
		iLow      = result.Index("low")
		iClose    = result.Index("close")
		iPreClose = result.Index("pre_close")
		iChange   = result.Index("change")
		iPctChg   = result.Index("pct_chg")
		iVol      = result.Index("vol")
		iAmount   = result.Index("amount")
	)
	ls := make([]*Bar, 0, len(result.Items))
	for _, row := range result.Items {
		ls = append(ls, &Bar{
			TsCode:    str(row, iCode),
			TradeDate: str(row, iDate),
			Open:      f64(row, iOpen),
			High:      f64(row, iHigh),
			Low:       f64(row, iLow),
			Close:     f64(row, iClose),
			PreClose:  f64(row, iPreClose),
			Change:    f64(row, iChange),
			PctChg:    f64(row, iPctChg),
			Vol:       f64(row, iVol),
			Amount:    f64(row, iAmount),
		})
	}
	return ls, nil
}

// DailyBasic 获取每日指标
func (this *Client) DailyBasic(ctx context.Context, endDate, tsCode string) ([]*Basic, error) {
	result, err := this.Do(ctx, "daily_basic",
		map[string]any{"ts_code": tsCode, "end_date": endDate},
		"ts_code,trade_date,free_share,close")
	if err != nil {
		return nil, err
	}
	var (
		iCode      = result.Index("ts_code")
		iDate      = result.Index("trade_date")
		iFreeShare = result.Index("free_share")
		iClose     = result.Index("close")
	)
	ls := make([]*Basic, 0, len(result.Items))
	for _, row := range result.Items {
		ls = append(ls, &Basic{
			TsCode:    str(row, iCode),
			TradeDate: str(row, iDate),
			FreeShare: f64(row, iFreeShare),
			Close:     f64(row, iClose),
		})
	}
	return ls, nil
}

// LimitListD 获取指定交易日的涨停统计
func (this *Client) LimitListD(ctx context.Context, tradeDate string) ([]*Limit, error) {
	result, err := this.Do(ctx, "limit_list_d",
		map[string]any{"trade_date": tradeDate, "limit_type": "U"},
		"trade_date,ts_code,industry,name,close,pct_chg,first_time,last_time,open_times")
	if err != nil {
		return nil, err
	}
	var (
		iDate      = result.Index("trade_date")
		iCode      = result.Index("ts_code")
		iIndustry  = result.Index("industry")
		iName      = result.Index("name")
		iClose     = result.Index("close")
		iPctChg    = result.Index("pct_chg")
		iFirstTime = result.Index("first_time")
		iLastTime  = result.Index("last_time")
		iOpenTimes = result.Index("open_times")
	)
	ls := make([]*Limit, 0, len(result.Items))
	for _, row := range result.Items {
		ls = append(ls, &Limit{
			TradeDate: str(row, iDate),
			TsCode:    str(row, iCode),
			Industry:  str(row, iIndustry),
			Name:      str(row, iName),
			Close:     f64(row, iClose),
			PctChg:    f64(row, iPctChg),
			FirstTime: str(row, iFirstTime),
			LastTime:  str(row, iLastTime),
			OpenTimes: num(row, iOpenTimes),
		})
	}
	return ls, nil
}

func str(row []any, i int) string {
	if i < 0 || i >= len(row) || row[i] == nil {
		return ""
	}
	return conv.String(row[i])
}

func f64(row []any, i int) float64 {
	if i < 0 || i >= len(row) || row[i] == nil {
		return 0
	}
	return conv.Float64(row[i])
}

func num(row []any, idx int) int {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return 0
	}
	return conv.Int(row[idx])
}
