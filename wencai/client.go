package wencai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/injoyai/conv"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

const DefaultUrl = "http://www.iwencai.com/customized/chart/get-robot-data"

// 问财返回的列名是中文,入库前映射成固定字段
const (
	ColCode = "股票代码"
	ColName = "股票简称"
)

// NewClient 问财自然语言选股的http客户端
// hexin是浏览器cookie里的hexin-v,部分查询不带也能用
func NewClient(hexin string) *Client {
	return &Client{
		HexinV: hexin,
		Url:    DefaultUrl,
		client: &http.Client{Timeout: time.Second * 30},
	}
}

type Client struct {
	HexinV string //问财的token
	Url    string //接口地址,方便测试时替换
	client *http.Client
}

// Stock 涨停股
type Stock struct {
	Code      string //股票代码,例如600000.SH
	Name      string //股票简称
	FirstTime string //首次涨停时间
}

// GetUpLimit 获取指定交易日的涨停股
// 查询涨幅前100和涨幅后100,合并后按代码去重,前者优先
func (this *Client) GetUpLimit(ctx context.Context, tradeDate string) ([]*Stock, error) {
	top, err := this.Query(ctx, fmt.Sprintf("%s,涨停,涨幅前100", tradeDate))
	if err != nil {
		return nil, err
	}
	tail, err := this.Query(ctx, fmt.Sprintf("%s,涨停,涨幅后100", tradeDate))
	if err != nil {
		return nil, err
	}

	timeCol := fmt.Sprintf("首次涨停时间[%s]", tradeDate)
	seen := make(map[string]bool)
	ls := []*Stock(nil)
	for _, row := range append(top, tail...) {
		code := conv.String(row[ColCode])
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		ls = append(ls, &Stock{
			Code:      code,
			Name:      conv.String(row[ColName]),
			FirstTime: conv.String(row[timeCol]),
		})
	}
	return ls, nil
}

// Query 自然语言查询,返回表格行,行的键是中文列名
func (this *Client) Query(ctx context.Context, question string) ([]map[string]any, error) {
	body, err := json.Marshal(map[string]any{
		"question":         question,
		"perpage":          100,
		"page":             1,
		"secondary_intent": "stock",
		"source":           "Ths_iwencai_Xuangu",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, this.Url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/89.0.4389.90 Safari/537.36 Edg/89.0.774.54")
	req.Header.Set("Referer", "http://www.iwencai.com/")
	if this.HexinV != "" {
		req.Header.Set("hexin-v", this.HexinV)
	}

	resp, err := this.client.Do(req)
	if err != nil {
		return nil, err
	}
	bs, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	m := map[string]any{}
	if err := json.Unmarshal(bs, &m); err != nil {
		return nil, err
	}
	if code := conv.Int(m["status_code"]); code != 0 {
		return nil, fmt.Errorf("问财错误(%d): %s", code, conv.String(m["status_msg"]))
	}

	//数据藏在 data.answer[0].txt[0].content.components[0].data.datas
	content := dig(first(dig(first(dig(dig(m, "data"), "answer")), "txt")), "content")
	component := first(dig(content, "components"))
	datas := conv.Interfaces(dig(dig(component, "data"), "datas"))

	rows := make([]map[string]any, 0, len(datas))
	for _, v := range datas {
		if row, ok := v.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func dig(v any, key string) any {
	if m, ok := v.(map[string]any); ok {
		return m[key]
	}
	return nil
}

func first(v any) any {
	if ls := conv.Interfaces(v); len(ls) > 0 {
		return ls[0]
	}
	return nil
}

// readBody 读取响应,部分接口返回gbk编码
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	var r io.Reader = resp.Body
	if strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "gbk") {
		r = transform.NewReader(r, simplifiedchinese.GBK.NewDecoder())
	}
	return io.ReadAll(r)
}
