/*
 * @Description: 全部区块类型的 Schema 定义
 * @Author: 安知鱼
 * @Date: 2026-02-11 09:40:12
 * @LastEditTime: 2026-02-11 09:40:12
 * @LastEditors: 安知鱼
 */
package builder

import (
	"github.com/networkk/networkk-app/pkg/domain/model"
)

// buildSchemas 返回封闭集合内全部区块类型的 Schema。
// 边界值是内容质量约束，越界必须报校验错误而不是静默截断。
func buildSchemas() []*BlockSchema {
	return []*BlockSchema{
		heroSchema(),
		tilesGridSchema(),
		testimonialsSchema(),
		metricsBandSchema(),
		faqSchema(),
		ctaSchema(),
		timelineSchema(),
		teamProfilesSchema(),
		processStepsSchema(),
		caseStudySchema(),
		contactFormSchema(),
		locationMapSchema(),
		eventsListSchema(),
		logosStripSchema(),
		filterableGridSchema(),
		insightsPreviewSchema(),
		caseStudyListSchema(),
	}
}

func heroSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeHero,
		Description: "首屏大图，文档中等价于唯一的 H1",
		Constraints: map[string]string{
			"title":     "必填，10~90 字符",
			"subtitle":  "可选，最长 160 字符",
			"media.alt": "媒体存在时必填，至少 5 字符",
			"ctas":      "最多 2 个",
		},
		Defaults: &model.HeroProps{
			BackgroundType: "solid",
			TextAlign:      "center",
			CTAs:           []model.CTALink{},
		},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.HeroProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeHero)
			}
			c := issues{blockID: blockID}
			c.strLen("title", p.Title, 10, 90)
			c.optStrLen("subtitle", p.Subtitle, 0, 160)
			if p.Media != nil {
				c.required("media.image", p.Media.Image)
				c.optStrLen("media.alt", p.Media.Alt, 5, 0)
				c.enum("media.ratio", p.Media.Ratio, "16:9", "4:3", "1:1")
			}
			c.cardinality("ctas", len(p.CTAs), 0, 2)
			for _, cta := range p.CTAs {
				c.strLen("ctas.label", cta.Label, 3, 0)
				c.required("ctas.href", cta.Href)
				c.enum("ctas.variant", cta.Variant, "primary", "secondary", "outline")
			}
			c.enum("backgroundType", p.BackgroundType, "image", "gradient", "solid")
			c.enum("textAlign", p.TextAlign, "left", "center", "right")
			return c.list
		},
	}
}

func tilesGridSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeTilesGrid,
		Description: "卡片网格",
		Constraints: map[string]string{
			"heading": "必填，5~50 字符",
			"items":   "3~12 个",
		},
		Defaults: &model.TilesGridProps{Columns: "3", Items: []model.TileItem{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.TilesGridProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeTilesGrid)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.optStrLen("description", p.Description, 0, 200)
			c.cardinality("items", len(p.Items), 3, 12)
			for _, item := range p.Items {
				c.required("items.title", item.Title)
				c.optStrLen("items.title", item.Title, 0, 30)
				c.optStrLen("items.description", item.Description, 0, 120)
				c.required("items.href", item.Href)
			}
			c.enum("columns", p.Columns, "2", "3", "4")
			return c.list
		},
	}
}

func testimonialsSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeTestimonials,
		Description: "客户证言",
		Constraints: map[string]string{
			"heading":     "必填，5~50 字符",
			"items":       "1~6 条",
			"items.quote": "50~300 字符",
		},
		Defaults: &model.TestimonialsProps{Layout: "grid", Items: []model.TestimonialItem{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.TestimonialsProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeTestimonials)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.cardinality("items", len(p.Items), 1, 6)
			for _, item := range p.Items {
				c.strLen("items.quote", item.Quote, 50, 300)
				c.required("items.author.name", item.Author.Name)
				c.required("items.author.title", item.Author.Title)
				c.required("items.author.company", item.Author.Company)
			}
			c.enum("layout", p.Layout, "grid", "carousel")
			return c.list
		},
	}
}

func metricsBandSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeMetricsBand,
		Description: "业务指标横幅",
		Constraints: map[string]string{
			"items": "2~6 项",
		},
		Defaults: &model.MetricsBandProps{Items: []model.MetricItem{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.MetricsBandProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeMetricsBand)
			}
			c := issues{blockID: blockID}
			c.optStrLen("heading", p.Heading, 0, 50)
			c.cardinality("items", len(p.Items), 2, 6)
			for _, item := range p.Items {
				c.required("items.value", item.Value)
				c.optStrLen("items.value", item.Value, 0, 10)
				c.required("items.label", item.Label)
				c.optStrLen("items.label", item.Label, 0, 30)
				c.optStrLen("items.description", item.Description, 0, 100)
			}
			return c.list
		},
	}
}

func faqSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeFAQ,
		Description: "常见问题，可输出 JSON-LD 结构化数据",
		Constraints: map[string]string{
			"heading":        "必填，5~50 字符",
			"items":          "至少 3 条",
			"items.question": "10~200 字符",
			"items.answer":   "20~500 字符",
		},
		Defaults: &model.FAQProps{JSONLd: true, Items: []model.FAQItem{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.FAQProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeFAQ)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.cardinality("items", len(p.Items), 3, 0)
			for _, item := range p.Items {
				c.strLen("items.question", item.Question, 10, 200)
				c.strLen("items.answer", item.Answer, 20, 500)
			}
			return c.list
		},
	}
}

func ctaSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeCTA,
		Description: "行动号召",
		Constraints: map[string]string{
			"heading":    "必填，10~60 字符",
			"primaryCta": "必填",
		},
		Defaults: &model.CTAProps{BackgroundType: "solid"},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.CTAProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeCTA)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 10, 60)
			c.optStrLen("description", p.Description, 0, 200)
			c.required("primaryCta.label", p.PrimaryCTA.Label)
			c.required("primaryCta.href", p.PrimaryCTA.Href)
			if p.SecondaryCTA != nil {
				c.required("secondaryCta.label", p.SecondaryCTA.Label)
				c.required("secondaryCta.href", p.SecondaryCTA.Href)
			}
			c.enum("backgroundType", p.BackgroundType, "solid", "gradient")
			return c.list
		},
	}
}

func timelineSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeTimeline,
		Description: "发展历程时间线",
		Constraints: map[string]string{
			"heading": "必填，5~50 字符",
			"items":   "2~12 个节点",
		},
		Defaults: &model.TimelineProps{Items: []model.TimelineEntry{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.TimelineProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeTimeline)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.cardinality("items", len(p.Items), 2, 12)
			for _, item := range p.Items {
				c.required("items.year", item.Year)
				c.required("items.title", item.Title)
				c.optStrLen("items.description", item.Description, 0, 200)
			}
			return c.list
		},
	}
}

func teamProfilesSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeTeamProfiles,
		Description: "团队成员介绍",
		Constraints: map[string]string{
			"heading": "必填，5~50 字符",
			"members": "1~24 人",
		},
		Defaults: &model.TeamProfilesProps{Members: []model.TeamMember{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.TeamProfilesProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeTeamProfiles)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.cardinality("members", len(p.Members), 1, 24)
			for _, m := range p.Members {
				c.required("members.name", m.Name)
				c.required("members.title", m.Title)
				c.optStrLen("members.bio", m.Bio, 0, 300)
			}
			return c.list
		},
	}
}

func processStepsSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeProcessSteps,
		Description: "服务流程",
		Constraints: map[string]string{
			"heading": "必填，5~50 字符",
			"steps":   "2~8 步",
		},
		Defaults: &model.ProcessStepsProps{Steps: []model.ProcessStep{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.ProcessStepsProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeProcessSteps)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.cardinality("steps", len(p.Steps), 2, 8)
			for _, s := range p.Steps {
				c.required("steps.title", s.Title)
				c.required("steps.description", s.Description)
				c.optStrLen("steps.description", s.Description, 0, 200)
			}
			return c.list
		},
	}
}

func caseStudySchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeCaseStudy,
		Description: "单个客户案例",
		Constraints: map[string]string{
			"title":   "必填，10~90 字符",
			"client":  "必填",
			"summary": "50~500 字符",
			"metrics": "最多 6 项",
		},
		Defaults: &model.CaseStudyProps{},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.CaseStudyProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeCaseStudy)
			}
			c := issues{blockID: blockID}
			c.strLen("title", p.Title, 10, 90)
			c.required("client", p.Client)
			c.strLen("summary", p.Summary, 50, 500)
			c.cardinality("metrics", len(p.Metrics), 0, 6)
			for _, m := range p.Metrics {
				c.required("metrics.value", m.Value)
				c.required("metrics.label", m.Label)
			}
			return c.list
		},
	}
}

func contactFormSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeContactForm,
		Description: "联系表单",
		Constraints: map[string]string{
			"heading":     "必填，5~60 字符",
			"fields":      "1~10 个",
			"fields.kind": "text / email / phone / textarea / select",
			"submitLabel": "必填",
		},
		Defaults: &model.ContactFormProps{SubmitLabel: "Submit", Fields: []model.FormField{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.ContactFormProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeContactForm)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 60)
			c.optStrLen("description", p.Description, 0, 200)
			c.cardinality("fields", len(p.Fields), 1, 10)
			for _, f := range p.Fields {
				c.required("fields.name", f.Name)
				c.required("fields.label", f.Label)
				c.enum("fields.kind", f.Kind, "text", "email", "phone", "textarea", "select")
				if f.Kind == "" {
					c.add("fields.kind", "required")
				}
			}
			c.required("submitLabel", p.SubmitLabel)
			return c.list
		},
	}
}

func locationMapSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeLocationMap,
		Description: "办公地点地图",
		Constraints: map[string]string{
			"address":   "必填",
			"latitude":  "-90~90",
			"longitude": "-180~180",
			"zoom":      "1~20",
		},
		Defaults: &model.LocationMapProps{Zoom: 14},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.LocationMapProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeLocationMap)
			}
			c := issues{blockID: blockID}
			c.required("address", p.Address)
			if p.Latitude < -90 || p.Latitude > 90 {
				c.add("latitude", "between -90 and 90")
			}
			if p.Longitude < -180 || p.Longitude > 180 {
				c.add("longitude", "between -180 and 180")
			}
			if p.Zoom != 0 {
				c.intRange("zoom", p.Zoom, 1, 20)
			}
			return c.list
		},
	}
}

func eventsListSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeEventsList,
		Description: "活动列表",
		Constraints: map[string]string{
			"heading": "必填，5~50 字符",
			"items":   "1~20 场",
		},
		Defaults: &model.EventsListProps{Items: []model.EventItem{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.EventsListProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeEventsList)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.cardinality("items", len(p.Items), 1, 20)
			for _, item := range p.Items {
				c.required("items.title", item.Title)
				c.required("items.date", item.Date)
			}
			return c.list
		},
	}
}

func logosStripSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeLogosStrip,
		Description: "客户 Logo 墙",
		Constraints: map[string]string{
			"logos": "3~12 个",
		},
		Defaults: &model.LogosStripProps{Logos: []model.MediaRef{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.LogosStripProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeLogosStrip)
			}
			c := issues{blockID: blockID}
			c.optStrLen("heading", p.Heading, 0, 50)
			c.cardinality("logos", len(p.Logos), 3, 12)
			for _, logo := range p.Logos {
				c.required("logos.image", logo.Image)
			}
			return c.list
		},
	}
}

func filterableGridSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeFilterableGrid,
		Description: "可筛选的内容网格",
		Constraints: map[string]string{
			"heading": "必填，5~50 字符",
			"filters": "1~10 个",
			"items":   "1~48 个",
		},
		Defaults: &model.FilterableGridProps{Filters: []string{}, Items: []model.TileItem{}},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.FilterableGridProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeFilterableGrid)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.cardinality("filters", len(p.Filters), 1, 10)
			c.cardinality("items", len(p.Items), 1, 48)
			for _, item := range p.Items {
				c.required("items.title", item.Title)
				c.required("items.href", item.Href)
			}
			return c.list
		},
	}
}

func insightsPreviewSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeInsightsPreview,
		Description: "洞察文章预览，渲染侧动态取数",
		Constraints: map[string]string{
			"heading": "必填，5~50 字符",
			"limit":   "1~12",
		},
		Defaults: &model.InsightsPreviewProps{Limit: 3},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.InsightsPreviewProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeInsightsPreview)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.intRange("limit", p.Limit, 1, 12)
			return c.list
		},
	}
}

func caseStudyListSchema() *BlockSchema {
	return &BlockSchema{
		Type:        model.BlockTypeCaseStudyList,
		Description: "客户案例列表",
		Constraints: map[string]string{
			"heading": "必填，5~50 字符",
			"limit":   "1~12",
		},
		Defaults: &model.CaseStudyListProps{Limit: 6},
		validate: func(blockID string, props model.BlockProps) []model.ValidationIssue {
			p, ok := props.(*model.CaseStudyListProps)
			if !ok {
				return wrongProps(blockID, model.BlockTypeCaseStudyList)
			}
			c := issues{blockID: blockID}
			c.strLen("heading", p.Heading, 5, 50)
			c.intRange("limit", p.Limit, 1, 12)
			return c.list
		},
	}
}
