/*
 * @Description: 页面构建器的区块（Block）领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 10:12:40
 * @LastEditTime: 2026-02-21 17:03:18
 * @LastEditors: 安知鱼
 */
package model

import (
	"encoding/json"
	"fmt"
)

// BlockType 是区块类型的封闭枚举。
// 注册表（builder.Registry）只认识这里列出的类型，其余一律视为配置缺陷。
type BlockType string

const (
	BlockTypeHero            BlockType = "Hero"
	BlockTypeTilesGrid       BlockType = "TilesGrid"
	BlockTypeTestimonials    BlockType = "Testimonials"
	BlockTypeMetricsBand     BlockType = "MetricsBand"
	BlockTypeFAQ             BlockType = "FAQ"
	BlockTypeCTA             BlockType = "CTA"
	BlockTypeTimeline        BlockType = "Timeline"
	BlockTypeTeamProfiles    BlockType = "TeamProfiles"
	BlockTypeProcessSteps    BlockType = "ProcessSteps"
	BlockTypeCaseStudy       BlockType = "CaseStudy"
	BlockTypeContactForm     BlockType = "ContactForm"
	BlockTypeLocationMap     BlockType = "LocationMap"
	BlockTypeEventsList      BlockType = "EventsList"
	BlockTypeLogosStrip      BlockType = "LogosStrip"
	BlockTypeFilterableGrid  BlockType = "FilterableGrid"
	BlockTypeInsightsPreview BlockType = "InsightsPreview"
	BlockTypeCaseStudyList   BlockType = "CaseStudyList"
)

// AllBlockTypes 按展示顺序列出全部已注册的区块类型。
var AllBlockTypes = []BlockType{
	BlockTypeHero, BlockTypeTilesGrid, BlockTypeTestimonials,
	BlockTypeMetricsBand, BlockTypeFAQ, BlockTypeCTA,
	BlockTypeTimeline, BlockTypeTeamProfiles, BlockTypeProcessSteps,
	BlockTypeCaseStudy, BlockTypeContactForm, BlockTypeLocationMap,
	BlockTypeEventsList, BlockTypeLogosStrip, BlockTypeFilterableGrid,
	BlockTypeInsightsPreview, BlockTypeCaseStudyList,
}

// BlockLayout 描述区块在 12 列栅格中的位置。
type BlockLayout struct {
	ColSpan int  `json:"colSpan,omitempty"` // 1..12
	RowSpan int  `json:"rowSpan,omitempty"` // >= 1
	Order   *int `json:"order,omitempty"`
}

// BlockProps 是区块负载的封闭联合（tagged union）。
// 每种区块类型对应一个具体的 Props 结构体，避免 map[string]interface{} 式的动态负载。
type BlockProps interface {
	BlockType() BlockType
}

// BlockInstance 是文档中的一个区块实例。
// ID 在文档生命周期内不可变且不复用（即使区块被删除），以保证布局引用稳定。
// Children 构成一棵树；校验时会防御性拒绝环和重复 ID。
type BlockInstance struct {
	ID       string          `json:"id"`
	Type     BlockType       `json:"type"`
	Props    BlockProps      `json:"props"`
	Layout   *BlockLayout    `json:"layout,omitempty"`
	Children []BlockInstance `json:"children,omitempty"`
}

// --- 通用子对象 ---

// MediaRef 是带替代文本的媒体引用。Alt 为空会被校验引擎判定为可访问性硬错误。
type MediaRef struct {
	Image string `json:"image"`
	Alt   string `json:"alt"`
	Ratio string `json:"ratio,omitempty"` // 16:9 / 4:3 / 1:1
}

// CTALink 是一个行动号召链接。
type CTALink struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Variant string `json:"variant,omitempty"` // primary / secondary / outline
}

// --- 各区块类型的 Props ---

// HeroProps 首屏大图区块。文档中 Hero 等价于唯一的 H1。
type HeroProps struct {
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle,omitempty"`
	Media          *MediaRef `json:"media,omitempty"`
	CTAs           []CTALink `json:"ctas"`
	BackgroundType string    `json:"backgroundType,omitempty"` // image / gradient / solid
	TextAlign      string    `json:"textAlign,omitempty"`      // left / center / right
}

func (HeroProps) BlockType() BlockType { return BlockTypeHero }

// TileItem 是卡片网格中的一项。
type TileItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Href        string `json:"href"`
}

// TilesGridProps 卡片网格区块，3~12 个卡片。
type TilesGridProps struct {
	Heading     string     `json:"heading"`
	Description string     `json:"description,omitempty"`
	Items       []TileItem `json:"items"`
	Columns     string     `json:"columns,omitempty"` // 2 / 3 / 4
}

func (TilesGridProps) BlockType() BlockType { return BlockTypeTilesGrid }

// TestimonialAuthor 证言作者信息。
type TestimonialAuthor struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Image   string `json:"image,omitempty"`
}

// TestimonialItem 一条客户证言。
type TestimonialItem struct {
	Quote  string            `json:"quote"`
	Author TestimonialAuthor `json:"author"`
}

// TestimonialsProps 客户证言区块。
type TestimonialsProps struct {
	Heading string            `json:"heading"`
	Items   []TestimonialItem `json:"items"`
	Layout  string            `json:"layout,omitempty"` // grid / carousel
}

func (TestimonialsProps) BlockType() BlockType { return BlockTypeTestimonials }

// MetricItem 一项业务指标。
type MetricItem struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// MetricsBandProps 指标横幅区块，2~6 项。
type MetricsBandProps struct {
	Heading string       `json:"heading,omitempty"`
	Items   []MetricItem `json:"items"`
}

func (MetricsBandProps) BlockType() BlockType { return BlockTypeMetricsBand }

// FAQItem 一条常见问题。
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQProps 常见问题区块，至少 3 条。JSONLd 控制是否输出结构化数据。
type FAQProps struct {
	Heading string    `json:"heading"`
	Items   []FAQItem `json:"items"`
	JSONLd  bool      `json:"jsonLd,omitempty"`
}

func (FAQProps) BlockType() BlockType { return BlockTypeFAQ }

// CTAProps 行动号召区块。
type CTAProps struct {
	Heading        string   `json:"heading"`
	Description    string   `json:"description,omitempty"`
	PrimaryCTA     CTALink  `json:"primaryCta"`
	SecondaryCTA   *CTALink `json:"secondaryCta,omitempty"`
	BackgroundType string   `json:"backgroundType,omitempty"` // solid / gradient
}

func (CTAProps) BlockType() BlockType { return BlockTypeCTA }

// TimelineEntry 时间线上的一个节点。
type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TimelineProps 发展历程区块，2~12 个节点。
type TimelineProps struct {
	Heading string          `json:"heading"`
	Items   []TimelineEntry `json:"items"`
}

func (TimelineProps) BlockType() BlockType { return BlockTypeTimeline }

// TeamMember 团队成员信息。
type TeamMember struct {
	Name  string    `json:"name"`
	Title string    `json:"title"`
	Bio   string    `json:"bio,omitempty"`
	Photo *MediaRef `json:"photo,omitempty"`
}

// TeamProfilesProps 团队介绍区块，1~24 人。
type TeamProfilesProps struct {
	Heading string       `json:"heading"`
	Members []TeamMember `json:"members"`
}

func (TeamProfilesProps) BlockType() BlockType { return BlockTypeTeamProfiles }

// ProcessStep 流程中的一步。
type ProcessStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// ProcessStepsProps 服务流程区块，2~8 步。
type ProcessStepsProps struct {
	Heading string        `json:"heading"`
	Steps   []ProcessStep `json:"steps"`
}

func (ProcessStepsProps) BlockType() BlockType { return BlockTypeProcessSteps }

// CaseStudyProps 单个客户案例区块。
type CaseStudyProps struct {
	Title   string       `json:"title"`
	Client  string       `json:"client"`
	Summary string       `json:"summary"`
	Metrics []MetricItem `json:"metrics,omitempty"`
	Media   *MediaRef    `json:"media,omitempty"`
}

func (CaseStudyProps) BlockType() BlockType { return BlockTypeCaseStudy }

// FormField 联系表单中的一个字段。
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"` // text / email / phone / textarea / select
	Required bool   `json:"required,omitempty"`
}

// ContactFormProps 联系表单区块，1~10 个字段。
type ContactFormProps struct {
	Heading        string      `json:"heading"`
	Description    string      `json:"description,omitempty"`
	Fields         []FormField `json:"fields"`
	SubmitLabel    string      `json:"submitLabel"`
	SuccessMessage string      `json:"successMessage,omitempty"`
}

func (ContactFormProps) BlockType() BlockType { return BlockTypeContactForm }

// LocationMapProps 位置地图区块。
type LocationMapProps struct {
	Heading   string  `json:"heading,omitempty"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom,omitempty"` // 1..20
}

func (LocationMapProps) BlockType() BlockType { return BlockTypeLocationMap }

// EventItem 一场活动。
type EventItem struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location,omitempty"`
	Href     string `json:"href,omitempty"`
}

// EventsListProps 活动列表区块，1~20 场。
type EventsListProps struct {
	Heading string      `json:"heading"`
	Items   []EventItem `json:"items"`
}

func (EventsListProps) BlockType() BlockType { return BlockTypeEventsList }

// LogosStripProps 客户 Logo 墙区块，3~12 个 Logo。
type LogosStripProps struct {
	Heading string     `json:"heading,omitempty"`
	Logos   []MediaRef `json:"logos"`
}

func (LogosStripProps) BlockType() BlockType { return BlockTypeLogosStrip }

// FilterableGridProps 可筛选网格区块。
type FilterableGridProps struct {
	Heading string     `json:"heading"`
	Filters []string   `json:"filters"`
	Items   []TileItem `json:"items"`
}

func (FilterableGridProps) BlockType() BlockType { return BlockTypeFilterableGrid }

// InsightsPreviewProps 洞察文章预览区块，由站点渲染侧动态取数。
type InsightsPreviewProps struct {
	Heading  string `json:"heading"`
	Category string `json:"category,omitempty"`
	Limit    int    `json:"limit"` // 1..12
}

func (InsightsPreviewProps) BlockType() BlockType { return BlockTypeInsightsPreview }

// CaseStudyListProps 案例列表区块。
type CaseStudyListProps struct {
	Heading     string `json:"heading"`
	Limit       int    `json:"limit"` // 1..12
	ShowMetrics bool   `json:"showMetrics,omitempty"`
}

func (CaseStudyListProps) BlockType() BlockType { return BlockTypeCaseStudyList }

// UnknownProps 承载未注册类型的原始负载。
// 反序列化阶段不报错，统一交由校验引擎产出 UnknownBlockType 问题。
type UnknownProps struct {
	Raw json.RawMessage
}

func (UnknownProps) BlockType() BlockType { return "" }

// NewBlockProps 按类型返回对应 Props 结构体的零值指针；未注册类型返回 nil。
func NewBlockProps(t BlockType) BlockProps {
	switch t {
	case BlockTypeHero:
		return &HeroProps{}
	case BlockTypeTilesGrid:
		return &TilesGridProps{}
	case BlockTypeTestimonials:
		return &TestimonialsProps{}
	case BlockTypeMetricsBand:
		return &MetricsBandProps{}
	case BlockTypeFAQ:
		return &FAQProps{}
	case BlockTypeCTA:
		return &CTAProps{}
	case BlockTypeTimeline:
		return &TimelineProps{}
	case BlockTypeTeamProfiles:
		return &TeamProfilesProps{}
	case BlockTypeProcessSteps:
		return &ProcessStepsProps{}
	case BlockTypeCaseStudy:
		return &CaseStudyProps{}
	case BlockTypeContactForm:
		return &ContactFormProps{}
	case BlockTypeLocationMap:
		return &LocationMapProps{}
	case BlockTypeEventsList:
		return &EventsListProps{}
	case BlockTypeLogosStrip:
		return &LogosStripProps{}
	case BlockTypeFilterableGrid:
		return &FilterableGridProps{}
	case BlockTypeInsightsPreview:
		return &InsightsPreviewProps{}
	case BlockTypeCaseStudyList:
		return &CaseStudyListProps{}
	default:
		return nil
	}
}

// blockInstanceJSON 是序列化用的影子结构，props 先以原始 JSON 承载。
type blockInstanceJSON struct {
	ID       string          `json:"id"`
	Type     BlockType       `json:"type"`
	Props    json.RawMessage `json:"props,omitempty"`
	Layout   *BlockLayout    `json:"layout,omitempty"`
	Children []BlockInstance `json:"children,omitempty"`
}

// UnmarshalJSON 按 type 字段把 props 解码成对应的具体结构体。
// 未注册的类型会被保留为 UnknownProps，留给校验引擎报告。
func (b *BlockInstance) UnmarshalJSON(data []byte) error {
	var shadow blockInstanceJSON
	if err := json.Unmarshal(data, &shadow); err != nil {
		return fmt.Errorf("解析区块实例失败: %w", err)
	}

	b.ID = shadow.ID
	b.Type = shadow.Type
	b.Layout = shadow.Layout
	b.Children = shadow.Children
	b.Props = nil

	props := NewBlockProps(shadow.Type)
	if props == nil {
		if len(shadow.Props) > 0 {
			b.Props = UnknownProps{Raw: shadow.Props}
		}
		return nil
	}
	if len(shadow.Props) > 0 {
		if err := json.Unmarshal(shadow.Props, props); err != nil {
			return fmt.Errorf("解析区块 %q 的 props 失败: %w", shadow.ID, err)
		}
	}
	b.Props = props
	return nil
}

// MarshalJSON 与 UnmarshalJSON 对称，输出纯 JSON 文档。
func (b BlockInstance) MarshalJSON() ([]byte, error) {
	shadow := blockInstanceJSON{
		ID:       b.ID,
		Type:     b.Type,
		Layout:   b.Layout,
		Children: b.Children,
	}
	switch p := b.Props.(type) {
	case nil:
		// props 缺失同样交由校验引擎报告
	case UnknownProps:
		shadow.Props = p.Raw
	default:
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("序列化区块 %q 的 props 失败: %w", b.ID, err)
		}
		shadow.Props = raw
	}
	return json.Marshal(shadow)
}
