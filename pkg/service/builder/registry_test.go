package builder

import (
	"errors"
	"testing"

	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	t.Run("所有封闭枚举内的类型都已注册", func(t *testing.T) {
		for _, bt := range model.AllBlockTypes {
			s, err := r.Get(bt)
			if err != nil {
				t.Errorf("类型 %s 未注册: %v", bt, err)
				continue
			}
			if s.Defaults == nil {
				t.Errorf("类型 %s 缺少默认值", bt)
			}
			if s.validate == nil {
				t.Errorf("类型 %s 缺少校验函数", bt)
			}
		}
	})

	t.Run("未注册类型返回ErrUnknownBlockType", func(t *testing.T) {
		_, err := r.Get("VideoWall")
		if !errors.Is(err, constant.ErrUnknownBlockType) {
			t.Errorf("期望 ErrUnknownBlockType, 实际: %v", err)
		}
	})

	t.Run("List按展示顺序返回全部Schema", func(t *testing.T) {
		list := r.List()
		if len(list) != len(model.AllBlockTypes) {
			t.Fatalf("期望 %d 个 Schema, 实际 %d 个", len(model.AllBlockTypes), len(list))
		}
		if list[0].Type != model.BlockTypeHero {
			t.Errorf("期望第一个是 Hero, 实际 %s", list[0].Type)
		}
	})
}

func TestRegistryValidateProps(t *testing.T) {
	r := NewRegistry()

	t.Run("类型与props不匹配", func(t *testing.T) {
		got := r.ValidateProps("b1", model.BlockTypeHero, &model.CTAProps{})
		if len(got) != 1 || got[0].Field != "props" {
			t.Errorf("期望 props 不匹配违规, 实际: %v", got)
		}
	})

	t.Run("未注册类型产出UnknownBlockType问题", func(t *testing.T) {
		got := r.ValidateProps("b1", "VideoWall", model.UnknownProps{})
		if len(got) != 1 || got[0].Code != model.IssueUnknownBlockType {
			t.Errorf("期望 UnknownBlockType, 实际: %v", got)
		}
	})
}
