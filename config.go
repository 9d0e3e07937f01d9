package taoquant

import (
	"errors"
	"fmt"
	"os"

	"github.com/injoyai/conv"
)

// Config 进程配置,启动时从环境变量构建一次,显式传递给各个组件,不使用全局变量
type Config struct {
	DBHost     string //数据库地址
	DBPort     int    //数据库端口
	DBName     string //数据库名称
	DBUser     string //数据库用户
	DBPassword string //数据库密码

	TushareToken string //tushare的api key,必填
	WencaiToken  string //问财的hexin-v,浏览器cookie里取

	FirstEndDay string //日线回补的起始结束日期,空表示从最新开始
	DayLength   int    //两个管道的天数限制
	ExportDir   string //csv导出目录,空表示不导出
}

// LoadConfig 从环境变量加载配置,缺少tushare的api key时直接报错
func LoadConfig() (*Config, error) {
	token := getenv("TUSHARE_API_KEY", os.Getenv("tushare_api_key"))
	if token == "" {
		return nil, errors.New("未找到Tushare API key,请设置环境变量TUSHARE_API_KEY")
	}
	return &Config{
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       conv.Int(getenv("DB_PORT", "3306")),
		DBName:       getenv("DB_NAME", "taoquant"),
		DBUser:       getenv("DB_USER", "root"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		TushareToken: token,
		WencaiToken:  os.Getenv("WENCAI_HEXIN_V"),
		FirstEndDay:  os.Getenv("TUSHARE_GET_DATA_FIRST_ENDDAY"),
		DayLength:    conv.Int(getenv("DAY_LENGTH", "30")),
		ExportDir:    os.Getenv("EXPORT_DIR"),
	}, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	return conv.Select(v == "", def, v)
}

// DSN 数据库连接信息
func (this *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		this.DBUser, this.DBPassword, this.DBHost, this.DBPort, this.DBName)
}

// ServerDSN 不带数据库的连接信息,用于建库
func (this *Config) ServerDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/?charset=utf8mb4",
		this.DBUser, this.DBPassword, this.DBHost, this.DBPort)
}
