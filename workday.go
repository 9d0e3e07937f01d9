package taoquant

import (
	"time"

	"github.com/injoyai/base/maps"
	"github.com/injoyai/conv"
	"xorm.io/xorm"
)

// NewWorkday 交易日管理,以daily_data里已有的交易日为准
// 日线管道先落库,涨停管道再用这里的日期算缺口
func NewWorkday(db *xorm.Engine) (*Workday, error) {
	w := &Workday{
		db:    db,
		cache: maps.NewBit(),
	}
	return w, w.Update()
}

type Workday struct {
	db    *xorm.Engine
	cache maps.Bit //交易日缓存
	dates []string //倒序缓存
}

// Update 更新,从daily_data读取全部交易日
func (this *Workday) Update() error {
	rows, err := this.db.QueryString("SELECT DISTINCT trade_date FROM daily_data ORDER BY trade_date DESC")
	if err != nil {
		return err
	}
	dates := make([]string, 0, len(rows))
	for _, v := range rows {
		date := v["trade_date"]
		dates = append(dates, date)
		this.cache.Set(uint64(conv.Int64(date)), true)
	}
	this.dates = dates
	return nil
}

// Dates 全部交易日,倒序
func (this *Workday) Dates() []string {
	return this.dates
}

// Is 是否是交易日
func (this *Workday) Is(t time.Time) bool {
	return this.cache.Get(uint64(conv.Int64(t.Format("20060102"))))
}

// TodayIs 今天是否是交易日
func (this *Workday) TodayIs() bool {
	return this.Is(time.Now())
}

// Missing 计算还没处理的交易日,保持倒序,最多limit个
func (this *Workday) Missing(done []string, limit int) []string {
	m := make(map[string]bool, len(done))
	for _, v := range done {
		m[v] = true
	}
	ls := []string(nil)
	for _, v := range this.dates {
		if m[v] {
			continue
		}
		ls = append(ls, v)
		if limit > 0 && len(ls) >= limit {
			break
		}
	}
	return ls
}
