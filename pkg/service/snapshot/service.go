/*
 * @Description: 已发布文档的快照缓存，加速营销站点的公开读取
 * @Author: 安知鱼
 * @Date: 2026-02-12 10:14:26
 * @LastEditTime: 2026-02-25 18:02:19
 * @LastEditors: 安知鱼
 */
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/networkk/networkk-app/internal/pkg/event"
	"github.com/networkk/networkk-app/pkg/constant"
	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/domain/repository"
)

const (
	pageKeyPrefix    = "snapshot:page:"
	insightKeyPrefix = "snapshot:insight:"

	// 缓存 TTL 只是兜底，正常失效由发布/删除事件驱动
	snapshotTTL = 24 * time.Hour
)

// Service 缓存已发布文档的完整 JSON，公开读取路径优先命中缓存。
// Redis 不可用时（rdb 为 nil）整体降级为直查数据库，行为不变只是变慢。
// 缓存读写全部尽力而为，任何缓存错误都不会冒泡到请求。
type Service struct {
	rdb         *redis.Client
	pageRepo    repository.PageRepository
	insightRepo repository.InsightRepository
}

// NewService 创建快照缓存服务，rdb 允许为 nil。
func NewService(rdb *redis.Client, pageRepo repository.PageRepository, insightRepo repository.InsightRepository) *Service {
	return &Service{rdb: rdb, pageRepo: pageRepo, insightRepo: insightRepo}
}

// RegisterListeners 把缓存的失效与回填挂到事件总线上。
// 发布事件携带完整文档，直接回填；更新与删除只做失效，
// 未发布的变更不该进入公开读取路径。
func (s *Service) RegisterListeners(bus *event.EventBus) {
	bus.Subscribe(event.PagePublished, func(payload interface{}) {
		if p, ok := payload.(*model.Page); ok {
			s.StorePage(context.Background(), p)
		}
	})
	bus.Subscribe(event.PageUpdated, func(payload interface{}) {
		if p, ok := payload.(*event.PageUpdatedPayload); ok {
			s.InvalidatePage(context.Background(), p.Page.Slug)
			// slug 被重命名时旧 slug 下的快照同样作废
			if p.PrevSlug != "" && p.PrevSlug != p.Page.Slug {
				s.InvalidatePage(context.Background(), p.PrevSlug)
			}
		}
	})
	bus.Subscribe(event.PageDeleted, func(payload interface{}) {
		if p, ok := payload.(*model.Page); ok {
			s.InvalidatePage(context.Background(), p.Slug)
		}
	})
	bus.Subscribe(event.InsightPublished, func(payload interface{}) {
		if i, ok := payload.(*model.Insight); ok {
			s.StoreInsight(context.Background(), i)
		}
	})
	bus.Subscribe(event.InsightUpdated, func(payload interface{}) {
		if p, ok := payload.(*event.InsightUpdatedPayload); ok {
			s.InvalidateInsight(context.Background(), p.Insight.Slug)
			if p.PrevSlug != "" && p.PrevSlug != p.Insight.Slug {
				s.InvalidateInsight(context.Background(), p.PrevSlug)
			}
		}
	})
	bus.Subscribe(event.InsightDeleted, func(payload interface{}) {
		if i, ok := payload.(*model.Insight); ok {
			s.InvalidateInsight(context.Background(), i.Slug)
		}
	})
}

// GetPage 供公开站点读取已发布页面：先查缓存，未命中回源并回填。
// 未发布的页面对公开读取视同不存在。
func (s *Service) GetPage(ctx context.Context, slug string) (*model.Page, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, pageKeyPrefix+slug).Bytes()
		if err == nil {
			var p model.Page
			if err := json.Unmarshal(raw, &p); err == nil {
				return &p, nil
			}
			// 缓存内容损坏，当作未命中并清掉
			s.InvalidatePage(ctx, slug)
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("[SnapshotService] 读取页面缓存失败: slug=%s, error=%v", slug, err)
		}
	}

	p, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p.Status != model.PageStatusPublished {
		return nil, fmt.Errorf("页面 %q 未发布: %w", slug, constant.ErrNotFound)
	}

	s.StorePage(ctx, p)
	return p, nil
}

// GetInsight 供公开站点读取已发布文章，语义与 GetPage 一致。
func (s *Service) GetInsight(ctx context.Context, slug string) (*model.Insight, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, insightKeyPrefix+slug).Bytes()
		if err == nil {
			var i model.Insight
			if err := json.Unmarshal(raw, &i); err == nil {
				return &i, nil
			}
			s.InvalidateInsight(ctx, slug)
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("[SnapshotService] 读取文章缓存失败: slug=%s, error=%v", slug, err)
		}
	}

	i, err := s.insightRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if i.Status != model.PageStatusPublished {
		return nil, fmt.Errorf("文章 %q 未发布: %w", slug, constant.ErrNotFound)
	}

	s.StoreInsight(ctx, i)
	return i, nil
}

// StorePage 把已发布页面写入缓存。
func (s *Service) StorePage(ctx context.Context, p *model.Page) {
	if s.rdb == nil || p.Status != model.PageStatusPublished {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		log.Printf("[SnapshotService] 序列化页面快照失败: slug=%s, error=%v", p.Slug, err)
		return
	}
	if err := s.rdb.Set(ctx, pageKeyPrefix+p.Slug, raw, snapshotTTL).Err(); err != nil {
		log.Printf("[SnapshotService] 写入页面缓存失败: slug=%s, error=%v", p.Slug, err)
	}
}

// StoreInsight 把已发布文章写入缓存。
func (s *Service) StoreInsight(ctx context.Context, i *model.Insight) {
	if s.rdb == nil || i.Status != model.PageStatusPublished {
		return
	}
	raw, err := json.Marshal(i)
	if err != nil {
		log.Printf("[SnapshotService] 序列化文章快照失败: slug=%s, error=%v", i.Slug, err)
		return
	}
	if err := s.rdb.Set(ctx, insightKeyPrefix+i.Slug, raw, snapshotTTL).Err(); err != nil {
		log.Printf("[SnapshotService] 写入文章缓存失败: slug=%s, error=%v", i.Slug, err)
	}
}

// InvalidatePage 删除页面缓存。
func (s *Service) InvalidatePage(ctx context.Context, slug string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, pageKeyPrefix+slug).Err(); err != nil {
		log.Printf("[SnapshotService] 失效页面缓存失败: slug=%s, error=%v", slug, err)
	}
}

// InvalidateInsight 删除文章缓存。
func (s *Service) InvalidateInsight(ctx context.Context, slug string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, insightKeyPrefix+slug).Err(); err != nil {
		log.Printf("[SnapshotService] 失效文章缓存失败: slug=%s, error=%v", slug, err)
	}
}
