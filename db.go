package taoquant

import (
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/go-sql-driver/mysql"
	"xorm.io/core"
	"xorm.io/xorm"
)

// Tables 全部表结构
var Tables = []any{
	new(StockBasic),
	new(DailyData),
	new(DailyBasic),
	new(UpLimitStock),
}

// OpenMysql 连接数据库,数据库和表不存在则创建
func OpenMysql(cfg *Config) (*xorm.Engine, error) {

	//先连接服务,创建数据库
	server, err := xorm.NewEngine("mysql", cfg.ServerDSN())
	if err != nil {
		return nil, err
	}
	if _, err = server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` DEFAULT CHARACTER SET utf8mb4", cfg.DBName)); err != nil {
		server.Close()
		return nil, err
	}
	server.Close()

	//重新连接到数据库
	db, err := xorm.NewEngine("mysql", cfg.DSN())
	if err != nil {
		return nil, err
	}
	db.SetMapper(core.SnakeMapper{})
	if err := db.Sync2(Tables...); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenSqlite 本地数据库,测试和单机使用
func OpenSqlite(filename string) (*xorm.Engine, error) {

	//如果文件夹不存在就创建
	dir, _ := filepath.Split(filename)
	if len(dir) > 0 {
		_ = os.MkdirAll(dir, 0777)
	}

	db, err := xorm.NewEngine("sqlite", filename)
	if err != nil {
		return nil, err
	}
	db.SetMapper(core.SnakeMapper{})
	db.DB().SetMaxOpenConns(1)
	if err := db.Sync2(Tables...); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// TradeDatesDone 涨停表里已经处理过的交易日,倒序
func TradeDatesDone(db *xorm.Engine) ([]string, error) {
	rows, err := db.QueryString("SELECT DISTINCT trade_date FROM up_limit_stocks ORDER BY trade_date DESC")
	if err != nil {
		return nil, err
	}
	ls := make([]string, 0, len(rows))
	for _, v := range rows {
		ls = append(ls, v["trade_date"])
	}
	return ls, nil
}

// NewSessionFunc 事务执行
func NewSessionFunc(db *xorm.Engine, fn func(session *xorm.Session) error) error {
	session := db.NewSession()
	defer session.Close()
	if err := session.Begin(); err != nil {
		session.Rollback()
		return err
	}
	if err := fn(session); err != nil {
		session.Rollback()
		return err
	}
	if err := session.Commit(); err != nil {
		session.Rollback()
		return err
	}
	return nil
}
