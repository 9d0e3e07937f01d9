package taoquant

import (
	"github.com/robfig/cron/v3"
	"github.com/taoquant/taoquant/tushare"
	"github.com/taoquant/taoquant/wencai"
	"xorm.io/xorm"
)

// NewManage 初始化数据库和两个数据源
func NewManage(cfg *Config) (*Manage, error) {

	//初始化配置
	if cfg == nil {
		var err error
		if cfg, err = LoadConfig(); err != nil {
			return nil, err
		}
	}

	//连接数据库,建库建表
	db, err := OpenMysql(cfg)
	if err != nil {
		return nil, err
	}

	ts := tushare.NewClient(cfg.TushareToken)
	wc := wencai.NewClient(cfg.WencaiToken)

	//股票列表管理
	codes, err := NewCodes(ts, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	//交易日管理
	workday, err := NewWorkday(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Manage{
		DB:      db,
		Config:  cfg,
		Tushare: ts,
		Wencai:  wc,
		Codes:   codes,
		Workday: workday,
		Cron:    cron.New(cron.WithSeconds()),
	}, nil
}

type Manage struct {
	DB      *xorm.Engine
	Config  *Config
	Tushare *tushare.Client
	Wencai  *wencai.Client
	Codes   *Codes
	Workday *Workday
	Cron    *cron.Cron
}

// AddWorkdayTask 添加交易日任务
func (this *Manage) AddWorkdayTask(spec string, f func(m *Manage)) {
	this.Cron.AddFunc(spec, func() {
		if this.Workday.TodayIs() {
			f(this)
		}
	})
}

func (this *Manage) Close() error {
	return this.DB.Close()
}
