package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AdminLogCollection = "admin_log"

// 操作类型
const (
	ActionAddition = "addition"
	ActionChange   = "change"
	ActionDeletion = "deletion"
)

// AdminLogModel 后台操作日志
type AdminLogModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ActionFlag    string             `bson:"action_flag" json:"action_flag"`
	Entity        string             `bson:"entity" json:"entity"`
	ObjectID      uint64             `bson:"object_id" json:"object_id"`
	ObjectRepr    string             `bson:"object_repr" json:"object_repr"`     // 操作时对象的展示名快照
	ChangeMessage string             `bson:"change_message" json:"change_message"` // 变更字段列表
	Actor         string             `bson:"actor" json:"actor"`
	TraceID       string             `bson:"trace_id" json:"trace_id"`
	ActionTime    time.Time          `bson:"action_time" json:"action_time"`
}
