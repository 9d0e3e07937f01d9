package extend

import (
	"os"
	"strings"
	"testing"

	"github.com/taoquant/taoquant"
)

func TestExportUpLimit(t *testing.T) {
	m := newTestManage(t)

	if _, err := taoquant.UpsertUpLimit(m.DB, []*taoquant.UpLimitStock{
		{TradeDate: "20250103", TsCode: "600000.SH", StockName: "浦发银行", UpLimitTime: "093001"},
		{TradeDate: "20250103", TsCode: "000001.SZ", StockName: "平安银行", UpLimitTime: "100000"},
		{TradeDate: "20250104", TsCode: "300001.SZ", StockName: "特锐德", UpLimitTime: "110000"},
	}); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	filename, err := ExportUpLimit(m.DB, "20250103", dir)
	if err != nil {
		t.Fatal(err)
	}

	bs, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	s := string(bs)
	if !strings.HasPrefix(s, "\xEF\xBB\xBF") {
		t.Error("missing bom")
	}
	if !strings.Contains(s, "600000.SH") || !strings.Contains(s, "平安银行") {
		t.Error("missing rows:", s)
	}
	if strings.Contains(s, "300001.SZ") {
		t.Error("should only export 20250103:", s)
	}

	//首次涨停时间升序
	if strings.Index(s, "093001") > strings.Index(s, "100000") {
		t.Error("unexpected order:", s)
	}
}
