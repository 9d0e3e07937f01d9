package taoquant

import (
	"fmt"
	"strings"
	"time"

	"xorm.io/xorm"
)

// 单条语句的最大行数,参考mysql批量插入的性能测试结果
const upsertChunk = 500

// upsert 批量写入,主键冲突时更新全部非主键列,重复执行结果一致
// created_at是首次写入时间,冲突时不覆盖
func upsert(db *xorm.Engine, table string, columns []string, key string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	mysql := db.Dialect().URI().DBType == "mysql"

	//冲突时更新的列
	updates := []string(nil)
	for _, c := range columns {
		if c == key || c == "created_at" {
			continue
		}
		if mysql {
			updates = append(updates, fmt.Sprintf("%s=VALUES(%s)", c, c))
		} else {
			updates = append(updates, fmt.Sprintf("%s=excluded.%s", c, c))
		}
	}

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"

	var affected int64
	for i := 0; i < len(rows); i += upsertChunk {
		end := i + upsertChunk
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[i:end]

		values := strings.TrimSuffix(strings.Repeat(placeholder+",", len(batch)), ",")
		var stmt string
		if mysql {
			stmt = fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON DUPLICATE KEY UPDATE %s",
				table, strings.Join(columns, ","), values, strings.Join(updates, ","))
		} else {
			stmt = fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON CONFLICT(%s) DO UPDATE SET %s",
				table, strings.Join(columns, ","), values, key, strings.Join(updates, ","))
		}

		args := make([]any, 0, len(batch)*len(columns)+1)
		args = append(args, stmt)
		for _, row := range batch {
			args = append(args, row...)
		}

		res, err := db.Exec(args...)
		if err != nil {
			return affected, err
		}
		if n, err := res.RowsAffected(); err == nil {
			affected += n
		}
	}
	return affected, nil
}

// UpsertStockBasic 股票基础信息,主键是代码
func UpsertStockBasic(db *xorm.Engine, list []*StockBasic) (int64, error) {
	rows := make([][]any, 0, len(list))
	for _, v := range list {
		rows = append(rows, []any{v.TsCode, v.Symbol, v.Name, v.Market, v.ListDate})
	}
	return upsert(db, "stock_basic",
		[]string{"ts_code", "symbol", "name", "market", "list_date"},
		"ts_code", rows)
}

// UpsertDailyData 日线行情,主键是日期+代码
func UpsertDailyData(db *xorm.Engine, list []*DailyData) (int64, error) {
	rows := make([][]any, 0, len(list))
	for _, v := range list {
		v.Id = NewID(v.TradeDate, v.TsCode)
		rows = append(rows, []any{v.Id, v.TsCode, v.TradeDate,
			v.Open, v.High, v.Low, v.Close, v.PreClose, v.Change, v.PctChg, v.Vol, v.Amount})
	}
	return upsert(db, "daily_data",
		[]string{"id", "ts_code", "trade_date", "open", "high", "low", "close", "pre_close", "price_change", "pct_chg", "vol", "amount"},
		"id", rows)
}

// UpsertDailyBasic 每日指标,主键是日期+代码
func UpsertDailyBasic(db *xorm.Engine, list []*DailyBasic) (int64, error) {
	rows := make([][]any, 0, len(list))
	for _, v := range list {
		v.Id = NewID(v.TradeDate, v.TsCode)
		rows = append(rows, []any{v.Id, v.TsCode, v.TradeDate, v.FreeShare, v.Close})
	}
	return upsert(db, "daily_basic",
		[]string{"id", "ts_code", "trade_date", "free_share", "close"},
		"id", rows)
}

// UpsertUpLimit 涨停股,主键是日期+代码
func UpsertUpLimit(db *xorm.Engine, list []*UpLimitStock) (int64, error) {
	rows := make([][]any, 0, len(list))
	for _, v := range list {
		v.Id = NewID(v.TradeDate, v.TsCode)
		if v.CreatedAt == 0 {
			v.CreatedAt = time.Now().Unix()
		}
		rows = append(rows, []any{v.Id, v.TradeDate, v.TsCode, v.StockName, v.UpLimitTime, v.CreatedAt})
	}
	return upsert(db, "up_limit_stocks",
		[]string{"id", "trade_date", "ts_code", "stock_name", "up_limit_time", "created_at"},
		"id", rows)
}
