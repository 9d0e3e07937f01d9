package tushare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultUrl = "http://api.tushare.pro"

// NewClient tushare pro接口的http客户端
func NewClient(token string) *Client {
	return &Client{
		Token:  token,
		Url:    DefaultUrl,
		client: &http.Client{Timeout: time.Second * 30},
	}
}

type Client struct {
	Token  string //api key
	Url    string //接口地址,方便测试时替换
	client *http.Client
}

type request struct {
	ApiName string         `json:"api_name"`
	Token   string         `json:"token"`
	Params  map[string]any `json:"params"`
	Fields  string         `json:"fields"`
}

type response struct {
	Code int     `json:"code"`
	Msg  string  `json:"msg"`
	Data *Result `json:"data"`
}

// Result 表格结果,fields是列名,items是行,列的顺序以fields为准
type Result struct {
	Fields []string `json:"fields"`
	Items  [][]any  `json:"items"`
}

// Index 列名对应的下标,不存在返回-1
func (this *Result) Index(field string) int {
	for i, v := range this.Fields {
		if v == field {
			return i
		}
	}
	return -1
}

// Do 调用接口,code非0时返回错误
func (this *Client) Do(ctx context.Context, api string, params map[string]any, fields string) (*Result, error) {
	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(&request{
		ApiName: api,
		Token:   this.Token,
		Params:  params,
		Fields:  fields,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, this.Url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := this.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	bs, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	result := new(response)
	if err := json.Unmarshal(bs, result); err != nil {
		return nil, err
	}
	if result.Code != 0 {
		return nil, fmt.Errorf("tushare错误(%d): %s", result.Code, result.Msg)
	}
	if result.Data == nil {
		result.Data = &Result{}
	}
	return result.Data, nil
}
