package extend

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/injoyai/conv"
	"github.com/taoquant/taoquant"
	"xorm.io/xorm"
)

// ExportUpLimit 导出指定交易日的涨停股到csv,返回文件路径
func ExportUpLimit(db *xorm.Engine, tradeDate, dir string) (string, error) {

	list := []*taoquant.UpLimitStock(nil)
	if err := db.Where("trade_date=?", tradeDate).Asc("up_limit_time").Find(&list); err != nil {
		return "", err
	}

	data := [][]any{{"交易日期", "股票代码", "股票简称", "首次涨停时间"}}
	for _, v := range list {
		data = append(data, []any{v.TradeDate, v.TsCode, v.StockName, v.UpLimitTime})
	}

	buf, err := toCsv(data)
	if err != nil {
		return "", err
	}

	filename := filepath.Join(dir, fmt.Sprintf("涨停_%s.csv", tradeDate))
	return filename, newFile(filename, buf)
}

// toCsv 带bom头,excel打开不乱码
func toCsv(data [][]any) (*bytes.Buffer, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(buf)
	for _, rows := range data {
		if err := w.Write(conv.Strings(rows)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf, nil
}

// newFile 新建文件,会覆盖,文件夹不存在就创建
func newFile(filename string, r io.Reader) error {
	if dir, _ := filepath.Split(filename); len(dir) > 0 {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}
