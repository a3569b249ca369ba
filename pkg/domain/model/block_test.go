package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBlockInstanceUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, b BlockInstance)
	}{
		{
			name: "已注册类型解码成具体结构体",
			input: `{
				"id": "b1",
				"type": "Hero",
				"props": {
					"title": "Leadership You Can Trust Today",
					"ctas": [{"label": "Contact", "href": "/contact", "variant": "primary"}]
				}
			}`,
			check: func(t *testing.T, b BlockInstance) {
				hero, ok := b.Props.(*HeroProps)
				if !ok {
					t.Fatalf("Props 类型 = %T, 期望 *HeroProps", b.Props)
				}
				if hero.Title != "Leadership You Can Trust Today" {
					t.Errorf("Title = %q", hero.Title)
				}
				if len(hero.CTAs) != 1 || hero.CTAs[0].Href != "/contact" {
					t.Errorf("CTAs 解码不完整: %+v", hero.CTAs)
				}
			},
		},
		{
			name:  "未注册类型保留原始负载",
			input: `{"id": "b2", "type": "Carousel", "props": {"slides": 3}}`,
			check: func(t *testing.T, b BlockInstance) {
				unknown, ok := b.Props.(UnknownProps)
				if !ok {
					t.Fatalf("Props 类型 = %T, 期望 UnknownProps", b.Props)
				}
				if !strings.Contains(string(unknown.Raw), "slides") {
					t.Errorf("原始负载丢失: %s", unknown.Raw)
				}
			},
		},
		{
			name:  "props 缺失时解码为 nil",
			input: `{"id": "b3", "type": "CTA"}`,
			check: func(t *testing.T, b BlockInstance) {
				if _, ok := b.Props.(*CTAProps); !ok {
					t.Fatalf("Props 类型 = %T, 期望 *CTAProps 零值", b.Props)
				}
			},
		},
		{
			name: "子区块递归解码",
			input: `{
				"id": "b4",
				"type": "TilesGrid",
				"props": {"items": []},
				"children": [
					{"id": "b5", "type": "CTA", "props": {"heading": "Talk to our team now"}}
				]
			}`,
			check: func(t *testing.T, b BlockInstance) {
				if len(b.Children) != 1 {
					t.Fatalf("Children 数量 = %d", len(b.Children))
				}
				cta, ok := b.Children[0].Props.(*CTAProps)
				if !ok {
					t.Fatalf("子区块 Props 类型 = %T", b.Children[0].Props)
				}
				if cta.Heading != "Talk to our team now" {
					t.Errorf("子区块 Heading = %q", cta.Heading)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BlockInstance
			if err := json.Unmarshal([]byte(tt.input), &b); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			tt.check(t, b)
		})
	}
}

func TestBlockInstanceMarshalRoundTrip(t *testing.T) {
	// 未知类型的区块必须原样写回：注册表回滚不能弄坏已存文档
	input := `{"id":"b9","type":"Carousel","props":{"slides":3,"autoplay":true}}`
	var b BlockInstance
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got, want map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if err := json.Unmarshal([]byte(input), &want); err != nil {
		t.Fatal(err)
	}
	gotProps, _ := json.Marshal(got["props"])
	wantProps, _ := json.Marshal(want["props"])
	if string(gotProps) != string(wantProps) {
		t.Errorf("未知类型 props 未原样保留: got %s, want %s", gotProps, wantProps)
	}
}

func TestNewBlockProps(t *testing.T) {
	for _, bt := range AllBlockTypes {
		props := NewBlockProps(bt)
		if props == nil {
			t.Errorf("NewBlockProps(%q) = nil, 已注册类型必须有对应结构体", bt)
			continue
		}
		if props.BlockType() != bt {
			t.Errorf("NewBlockProps(%q).BlockType() = %q", bt, props.BlockType())
		}
	}
	if NewBlockProps("Carousel") != nil {
		t.Error("未注册类型应返回 nil")
	}
}
