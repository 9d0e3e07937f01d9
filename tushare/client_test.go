package tushare

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDaily(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := map[string]any{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["api_name"] != "daily" {
			t.Error("unexpected api_name:", req["api_name"])
		}
		if req["token"] != "test-token" {
			t.Error("unexpected token:", req["token"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{
				"fields": []string{"ts_code", "trade_date", "open", "high", "low", "close", "pre_close", "change", "pct_chg", "vol", "amount"},
				"items": [][]any{
					{"600000.SH", "20250103", 10.0, 11.0, 9.9, 10.5, 10.0, 0.5, 5.0, 10000.0, 10500.0},
					{"600000.SH", "20250102", 9.8, 10.1, 9.7, 10.0, 9.8, 0.2, 2.04, 8000.0, 8000.0},
				},
			},
		})
	}))
	defer s.Close()

	c := NewClient("test-token")
	c.Url = s.URL

	bars, err := c.Daily(context.Background(), "20250103", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 2 {
		t.Fatal("unexpected bars:", len(bars))
	}
	if bars[0].TradeDate != "20250103" || bars[0].Close != 10.5 || bars[0].Change != 0.5 {
		t.Error("unexpected bar:", bars[0])
	}
}

func TestDoError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"code": 40203,
			"msg":  "抱歉，您每分钟最多访问该接口1次",
		})
	}))
	defer s.Close()

	c := NewClient("test-token")
	c.Url = s.URL

	if _, err := c.Do(context.Background(), "daily", nil, ""); err == nil {
		t.Error("expected error on non-zero code")
	}
}

func TestLimitListD(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := map[string]any{}
		json.NewDecoder(r.Body).Decode(&req)
		params, _ := req["params"].(map[string]any)
		if params["limit_type"] != "U" {
			t.Error("unexpected limit_type:", params["limit_type"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{
				"fields": []string{"trade_date", "ts_code", "industry", "name", "close", "pct_chg", "first_time", "last_time", "open_times"},
				"items": [][]any{
					{"20250103", "600000.SH", "银行", "浦发银行", 11.0, 10.0, "093001", "150000", 0},
				},
			},
		})
	}))
	defer s.Close()

	c := NewClient("test-token")
	c.Url = s.URL

	ls, err := c.LimitListD(context.Background(), "20250103")
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != 1 || ls[0].FirstTime != "093001" || ls[0].Name != "浦发银行" {
		t.Error("unexpected result:", ls)
	}
}
