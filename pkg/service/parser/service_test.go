package parser

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	s := NewService()

	tests := []struct {
		name     string
		input    string
		contains string
		excludes string
	}{
		{
			name:     "基础Markdown",
			input:    "# Heading\n\nSome **bold** text.",
			contains: "<strong>bold</strong>",
		},
		{
			name:     "脚本被消毒",
			input:    "hello <script>alert(1)</script> world",
			contains: "hello",
			excludes: "<script>",
		},
		{
			name:     "GFM表格",
			input:    "| A | B |\n|---|---|\n| 1 | 2 |",
			contains: "<table>",
		},
		{
			name:  "空输入",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Render(tt.input)
			if err != nil {
				t.Fatalf("渲染失败: %v", err)
			}
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("输出缺少 %q: %s", tt.contains, got)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("输出不应包含 %q: %s", tt.excludes, got)
			}
		})
	}
}

func TestRenderUsesCache(t *testing.T) {
	s := NewService()

	first, err := s.Render("# Same Content")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Render("# Same Content")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("缓存命中结果与首次渲染不一致")
	}
	if s.htmlCache.Size() != 1 {
		t.Errorf("期望缓存 1 条, 实际 %d 条", s.htmlCache.Size())
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "空字符串", input: "", want: 0},
		{name: "纯英文", input: "hello world again", want: 3},
		{name: "纯中文", input: "你好世界", want: 4},
		{name: "中英文混合", input: "hello 世界", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.input); got != tt.want {
				t.Errorf("CountWords(%q) = %d, 期望 %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadingTime(t *testing.T) {
	if got := ReadingTime(""); got != 0 {
		t.Errorf("空正文应为 0 分钟, 实际 %d", got)
	}
	if got := ReadingTime("short note"); got != 1 {
		t.Errorf("短文至少 1 分钟, 实际 %d", got)
	}
	long := strings.Repeat("word ", 600)
	if got := ReadingTime(long); got != 3 {
		t.Errorf("600 词应为 3 分钟, 实际 %d", got)
	}
}
