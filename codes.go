package taoquant

import (
	"context"
	"errors"
	"time"

	"github.com/injoyai/conv"
	"github.com/injoyai/logs"
	"github.com/robfig/cron/v3"
	"github.com/taoquant/taoquant/tushare"
	"xorm.io/xorm"
)

// NewCodes 股票列表管理,整表从tushare刷新并入库,缓存在内存
func NewCodes(c *tushare.Client, db *xorm.Engine) (*Codes, error) {

	cc := &Codes{
		Client: c,
		db:     db,
	}

	{ //设置定时器,每天早上9点更新数据
		task := cron.New(cron.WithSeconds())
		task.AddFunc("10 0 9 * * *", func() {
			for i := 0; i < 3; i++ {
				err := cc.Update()
				if err == nil {
					return
				}
				logs.Err(err)
				<-time.After(time.Minute * 5)
			}
		})
		task.Start()
	}

	//先从数据库加载,拉取由管道触发
	return cc, cc.Update(true)
}

type Codes struct {
	*tushare.Client                        //客户端
	db              *xorm.Engine           //数据库实例
	Map             map[string]*StockBasic //股票缓存
	list            []*StockBasic          //列表方式缓存
}

// GetName 获取股票名称
func (this *Codes) GetName(code string) string {
	if v, ok := this.Map[code]; ok {
		return v.Name
	}
	return "未知"
}

// GetStocks 获取全部股票代码
func (this *Codes) GetStocks(limits ...int) []string {
	limit := conv.Default(-1, limits...)
	ls := []string(nil)
	for _, v := range this.list {
		ls = append(ls, v.TsCode)
		if limit > 0 && len(ls) >= limit {
			break
		}
	}
	return ls
}

func (this *Codes) Get(code string) *StockBasic {
	return this.Map[code]
}

// Update 更新数据,从服务器或者数据库
func (this *Codes) Update(byDB ...bool) error {
	list, err := this.getCodes(len(byDB) > 0 && byDB[0])
	if err != nil {
		return err
	}
	m := make(map[string]*StockBasic, len(list))
	for _, v := range list {
		m[v.TsCode] = v
	}
	this.Map = m
	this.list = list
	return nil
}

// getCodes 从tushare拉取股票列表并入库,byDatabase时只读数据库
func (this *Codes) getCodes(byDatabase bool) ([]*StockBasic, error) {

	//1. 查询数据库所有股票
	list := []*StockBasic(nil)
	if err := this.db.Find(&list); err != nil {
		return nil, err
	}
	if byDatabase {
		return list, nil
	}

	if this.Client == nil {
		return nil, errors.New("client is nil")
	}

	//2. 从服务器获取所有股票
	resp, err := this.Client.StockBasic(context.Background())
	if err != nil {
		return nil, err
	}
	list = list[:0]
	for _, v := range resp {
		list = append(list, &StockBasic{
			TsCode:   v.TsCode,
			Symbol:   v.Symbol,
			Name:     v.Name,
			Market:   v.Market,
			ListDate: v.ListDate,
		})
	}

	//3. 整表写入,只增不删,退市的留在表里
	if _, err := UpsertStockBasic(this.db, list); err != nil {
		return nil, err
	}
	return list, nil
}
