package wencai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newResp(datas []map[string]any) map[string]any {
	return map[string]any{
		"status_code": 0,
		"data": map[string]any{
			"answer": []any{map[string]any{
				"txt": []any{map[string]any{
					"content": map[string]any{
						"components": []any{map[string]any{
							"data": map[string]any{"datas": datas},
						}},
					},
				}},
			}},
		},
	}
}

func TestGetUpLimit(t *testing.T) {
	timeCol := fmt.Sprintf("首次涨停时间[%s]", "20250103")

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := map[string]any{}
		json.NewDecoder(r.Body).Decode(&req)
		question, _ := req["question"].(string)

		//前100和后100各返回一部分,600000.SH重复出现
		datas := []map[string]any{
			{ColCode: "600000.SH", ColName: "浦发银行", timeCol: "093001"},
			{ColCode: "000001.SZ", ColName: "平安银行", timeCol: "100000"},
		}
		if question == "20250103,涨停,涨幅后100" {
			datas = []map[string]any{
				{ColCode: "600000.SH", ColName: "重复数据", timeCol: "140000"},
				{ColCode: "300001.SZ", ColName: "特锐德", timeCol: "143000"},
			}
		}
		json.NewEncoder(w).Encode(newResp(datas))
	}))
	defer s.Close()

	c := NewClient("")
	c.Url = s.URL

	ls, err := c.GetUpLimit(context.Background(), "20250103")
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != 3 {
		t.Fatal("unexpected stocks:", len(ls))
	}

	//去重后保留前100的数据
	for _, v := range ls {
		if v.Code == "600000.SH" && (v.Name != "浦发银行" || v.FirstTime != "093001") {
			t.Error("dedup should keep first:", v)
		}
	}
}

func TestGetUpLimitEmpty(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(newResp(nil))
	}))
	defer s.Close()

	c := NewClient("")
	c.Url = s.URL

	ls, err := c.GetUpLimit(context.Background(), "20250104")
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != 0 {
		t.Error("expected empty result:", ls)
	}
}

func TestQueryError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status_code": 1,
			"status_msg":  "请先登录",
		})
	}))
	defer s.Close()

	c := NewClient("")
	c.Url = s.URL

	if _, err := c.Query(context.Background(), "20250103,涨停,涨幅前100"); err == nil {
		t.Error("expected error on non-zero status_code")
	}
}
