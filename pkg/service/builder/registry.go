/*
 * @Description: 区块 Schema 注册表
 * @Author: 安知鱼
 * @Date: 2026-02-11 09:12:40
 * @LastEditTime: 2026-02-11 09:12:40
 * @LastEditors: 安知鱼
 */
package builder

import (
	"fmt"
	"unicode/utf8"

	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
)

// PropsValidator 校验某一类型区块的 props，返回发现的全部问题。
type PropsValidator func(blockID string, props model.BlockProps) []model.ValidationIssue

// BlockSchema 是注册表中一种区块类型的完整描述。
// Constraints 是面向编辑器 UI 的人类可读约束说明。
type BlockSchema struct {
	Type        model.BlockType   `json:"type"`
	Description string            `json:"description"`
	Constraints map[string]string `json:"constraints"`
	Defaults    model.BlockProps  `json:"defaults"`

	validate PropsValidator
}

// Registry 是进程级只读的区块 Schema 注册表。
// 启动时构建一次，之后不再变更，可被任意多个 goroutine 并发读取。
type Registry struct {
	schemas map[model.BlockType]*BlockSchema
	ordered []*BlockSchema
}

// NewRegistry 构建包含全部已知区块类型的注册表。
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[model.BlockType]*BlockSchema)}

	for _, s := range buildSchemas() {
		r.schemas[s.Type] = s
		r.ordered = append(r.ordered, s)
	}
	return r
}

// Get 返回指定类型的 Schema，未注册的类型返回 ErrUnknownBlockType。
func (r *Registry) Get(t model.BlockType) (*BlockSchema, error) {
	s, ok := r.schemas[t]
	if !ok {
		return nil, fmt.Errorf("区块类型 %q: %w", t, constant.ErrUnknownBlockType)
	}
	return s, nil
}

// List 按展示顺序返回全部 Schema。
func (r *Registry) List() []*BlockSchema {
	out := make([]*BlockSchema, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ValidateProps 用类型对应的 Schema 校验一个区块的 props。
// 类型未注册时返回 UnknownBlockType 问题而不是 error，配合校验引擎的收集式语义。
func (r *Registry) ValidateProps(blockID string, t model.BlockType, props model.BlockProps) []model.ValidationIssue {
	s, ok := r.schemas[t]
	if !ok {
		return []model.ValidationIssue{{
			Code:    model.IssueUnknownBlockType,
			BlockID: blockID,
			Message: fmt.Sprintf("未注册的区块类型 %q", t),
		}}
	}
	return s.validate(blockID, props)
}

// --- 校验原语 ---

// issues 是收集器，所有 check 方法发现的问题都追加进来，不短路。
type issues struct {
	blockID string
	list    []model.ValidationIssue
}

func (c *issues) add(field, constraint string) {
	c.list = append(c.list, model.ValidationIssue{
		Code:       model.IssueSchemaViolation,
		BlockID:    c.blockID,
		Field:      field,
		Constraint: constraint,
	})
}

func (c *issues) required(field, value string) {
	if value == "" {
		c.add(field, "required")
	}
}

// strLen 校验字符串长度（按 rune 计），min 为 0 表示不检查下界。
func (c *issues) strLen(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if min > 0 && n < min {
		c.add(field, fmt.Sprintf("min length %d", min))
	}
	if max > 0 && n > max {
		c.add(field, fmt.Sprintf("max length %d", max))
	}
}

// optStrLen 同 strLen，但空值直接放过。
func (c *issues) optStrLen(field, value string, min, max int) {
	if value == "" {
		return
	}
	c.strLen(field, value, min, max)
}

// cardinality 校验数组元素数量。
func (c *issues) cardinality(field string, n, min, max int) {
	if min > 0 && n < min {
		c.add(field, fmt.Sprintf("min %d", min))
	}
	if max > 0 && n > max {
		c.add(field, fmt.Sprintf("max %d", max))
	}
}

// enum 校验枚举成员，空值视为取默认值、直接放过。
func (c *issues) enum(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	c.add(field, fmt.Sprintf("one of %v", allowed))
}

// intRange 校验整数范围。
func (c *issues) intRange(field string, n, min, max int) {
	if n < min || n > max {
		c.add(field, fmt.Sprintf("between %d and %d", min, max))
	}
}

// wrongProps 在 props 类型与区块类型不匹配时产出单条问题。
// 正常解码流程不会出现这种组合，出现即说明文档被手工改坏了。
func wrongProps(blockID string, t model.BlockType) []model.ValidationIssue {
	return []model.ValidationIssue{{
		Code:       model.IssueSchemaViolation,
		BlockID:    blockID,
		Field:      "props",
		Constraint: fmt.Sprintf("expected %s props", t),
	}}
}
