package taoquant

// 表结构和原taoquant库保持一致
// 日期统一使用8位字符串,例如20250101

// NewID 生成主键,日期在前,代码在后,顺序不能变,否则会产生重复的逻辑行
func NewID(tradeDate, tsCode string) string {
	return tradeDate + tsCode
}

// StockBasic 股票基础信息,整表刷新,只增不删
type StockBasic struct {
	TsCode   string `xorm:"varchar(10) pk" json:"ts_code"` //股票代码,例如600000.SH
	Symbol   string `xorm:"varchar(6)" json:"symbol"`      //股票代码,不带交易所后缀
	Name     string `xorm:"varchar(50)" json:"name"`       //股票名称
	Market   string `xorm:"varchar(20)" json:"market"`     //市场类型,主板/创业板等
	ListDate string `xorm:"varchar(8)" json:"list_date"`   //上市日期
}

func (*StockBasic) TableName() string {
	return "stock_basic"
}

// DailyData 日线行情
type DailyData struct {
	Id        string  `xorm:"varchar(20) pk" json:"id"` //主键,日期+代码
	TsCode    string  `xorm:"varchar(10) index(idx_ts_code_trade_date)" json:"ts_code"`
	TradeDate string  `xorm:"varchar(8) index(idx_ts_code_trade_date)" json:"trade_date"`
	Open      float64 `xorm:"decimal(10,2)" json:"open"`
	High      float64 `xorm:"decimal(10,2)" json:"high"`
	Low       float64 `xorm:"decimal(10,2)" json:"low"`
	Close     float64 `xorm:"decimal(10,2)" json:"close"`
	PreClose  float64 `xorm:"decimal(10,2)" json:"pre_close"`                   //昨收
	Change    float64 `xorm:"decimal(10,2) 'price_change'" json:"price_change"` //涨跌额,change是关键字
	PctChg    float64 `xorm:"decimal(10,2)" json:"pct_chg"`                     //涨跌幅
	Vol       float64 `xorm:"decimal(20,2)" json:"vol"`                         //成交量,手
	Amount    float64 `xorm:"decimal(20,2)" json:"amount"`                      //成交额,千元
}

func (*DailyData) TableName() string {
	return "daily_data"
}

// DailyBasic 每日指标,目前只存流通股本和收盘价
type DailyBasic struct {
	Id        string  `xorm:"varchar(20) pk" json:"id"` //主键,日期+代码
	TsCode    string  `xorm:"varchar(10) index(idx_ts_code_trade_date)" json:"ts_code"`
	TradeDate string  `xorm:"varchar(8) index(idx_ts_code_trade_date)" json:"trade_date"`
	FreeShare float64 `xorm:"decimal(20,2)" json:"free_share"` //自由流通股本,万股
	Close     float64 `xorm:"decimal(10,2)" json:"close"`
}

func (*DailyBasic) TableName() string {
	return "daily_basic"
}

// UpLimitStock 涨停股
type UpLimitStock struct {
	Id          string `xorm:"varchar(20) pk" json:"id"` //主键,日期+代码
	TradeDate   string `xorm:"varchar(8)" json:"trade_date"`
	TsCode      string `xorm:"varchar(10)" json:"ts_code"`
	StockName   string `xorm:"varchar(50)" json:"stock_name"`
	UpLimitTime string `xorm:"varchar(8)" json:"up_limit_time"` //首次涨停时间,例如09:31:00
	CreatedAt   int64  `xorm:"created" json:"created_at"`       //首次写入时间
}

func (*UpLimitStock) TableName() string {
	return "up_limit_stocks"
}
