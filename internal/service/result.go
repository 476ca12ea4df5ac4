package service

// UpdateResult 按 ID 修改数据的结果
type UpdateResult int

const (
	// NotFound 目标不存在，未做任何修改
	NotFound UpdateResult = iota
	// Updated 已修改并持久化
	Updated
)

// Found 是否命中目标
func (r UpdateResult) Found() bool {
	return r == Updated
}

func (r UpdateResult) String() string {
	if r == Updated {
		return "updated"
	}
	return "not_found"
}

// MarshalText 以文本形式输出到 JSON
func (r UpdateResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
