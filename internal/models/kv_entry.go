package models

import "time"

// KVEntry 键值存储表，每个命名空间下的数据以 JSON 文本整体保存
type KVEntry struct {
	Key       string    `gorm:"primarykey;type:varchar(191)" json:"key"` // 命名空间键
	Value     string    `gorm:"type:text;not null" json:"value"`         // 序列化内容
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                 // 更新时间
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
