package taoquant

import (
	"path/filepath"
	"testing"
)

func TestNewID(t *testing.T) {
	if id := NewID("20250101", "600000.SH"); id != "20250101600000.SH" {
		t.Error("unexpected id:", id)
	}
}

func TestUpsertUpLimit(t *testing.T) {
	db, err := OpenSqlite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	list := []*UpLimitStock{
		{TradeDate: "20250101", TsCode: "600000.SH", StockName: "浦发银行", UpLimitTime: "093001"},
		{TradeDate: "20250101", TsCode: "000001.SZ", StockName: "平安银行", UpLimitTime: "100000"},
	}
	if _, err := UpsertUpLimit(db, list); err != nil {
		t.Fatal(err)
	}

	//重复写入,涨停时间变化,行数不变
	list[0].UpLimitTime = "093002"
	if _, err := UpsertUpLimit(db, list); err != nil {
		t.Fatal(err)
	}

	ls := []*UpLimitStock(nil)
	if err := db.Find(&ls); err != nil {
		t.Fatal(err)
	}
	if len(ls) != 2 {
		t.Fatal("unexpected rows:", len(ls))
	}
	for _, v := range ls {
		if v.TsCode == "600000.SH" && v.UpLimitTime != "093002" {
			t.Error("conflict update failed:", v.UpLimitTime)
		}
		if v.Id != NewID(v.TradeDate, v.TsCode) {
			t.Error("unexpected id:", v.Id)
		}
	}

	done, err := TradeDatesDone(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(done) != 1 || done[0] != "20250101" {
		t.Error("unexpected dates:", done)
	}
}

func TestUpsertDailyData(t *testing.T) {
	db, err := OpenSqlite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	list := []*DailyData{
		{TsCode: "600000.SH", TradeDate: "20250101", Open: 10, Close: 11, Change: 1, PctChg: 10},
	}
	if _, err := UpsertDailyData(db, list); err != nil {
		t.Fatal(err)
	}

	list[0].Close = 10.5
	if _, err := UpsertDailyData(db, list); err != nil {
		t.Fatal(err)
	}

	ls := []*DailyData(nil)
	if err := db.Find(&ls); err != nil {
		t.Fatal(err)
	}
	if len(ls) != 1 {
		t.Fatal("unexpected rows:", len(ls))
	}
	if ls[0].Close != 10.5 {
		t.Error("conflict update failed:", ls[0].Close)
	}
}
