package kafka

import (
	"strconv"
	"time"
)

// Canal 变更类型
const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// CanalMessage 定义了 Canal 推送到 Kafka 的 JSON 数据结构
type CanalMessage struct {
	ID       int64    `json:"id"`
	Database string   `json:"database"`
	Table    string   `json:"table"`
	PKNames  []string `json:"pkNames"`
	IsDDL    bool     `json:"isDdl"`
	Type     string   `json:"type"`
	ES       int64    `json:"es"`
	TS       int64    `json:"ts"`
	SQL      string   `json:"sql"`

	// Data 存储变更后的数据
	Data []map[string]interface{} `json:"data"`

	// Old 存储变更前的数据
	Old []map[string]interface{} `json:"old"`

	SqlType   map[string]int    `json:"sqlType"`
	MysqlType map[string]string `json:"mysqlType"`
}

// Canal 的 flat message 中列值均为字符串，NULL 为 nil

func StrToString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func StrToUint64(v interface{}) uint64 {
	n, _ := strconv.ParseUint(StrToString(v), 10, 64)
	return n
}

func StrToInt(v interface{}) int {
	n, _ := strconv.Atoi(StrToString(v))
	return n
}

// StrToDateTime 解析 DATETIME 列，数据库时区为 UTC
func StrToDateTime(v interface{}) time.Time {
	t, _ := time.ParseInLocation(time.DateTime, StrToString(v), time.UTC)
	return t
}

// StrToDateTimePtr 可空 DATETIME 列
func StrToDateTimePtr(v interface{}) *time.Time {
	if v == nil {
		return nil
	}
	t, err := time.ParseInLocation(time.DateTime, StrToString(v), time.UTC)
	if err != nil {
		return nil
	}
	return &t
}
