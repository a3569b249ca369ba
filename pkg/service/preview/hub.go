/*
 * @Description: 实时预览订阅中心
 * @Author: 安知鱼
 * @Date: 2026-02-11 14:08:50
 * @LastEditTime: 2026-02-11 14:08:50
 * @LastEditors: 安知鱼
 */
package preview

import (
	"log"
	"sync"
)

// Handle 是一条预览连接的抽象。
// Hub 只负责登记与广播，不拥有连接生命周期——连接归传输层所有。
type Handle interface {
	// SendUpdate 向客户端推送一个轻量 "update" 帧，提示其重新拉取文档
	SendUpdate() error
	// Close 关闭底层连接
	Close() error
}

// Hub 是进程级的 slug -> 订阅者集合 注册表。
// 进程启动时构建一次并注入各 Handler，关闭时统一断开全部连接。
// 同一 slug 的并发 Subscribe/Unsubscribe/Publish 由互斥锁保护。
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[Handle]struct{}
	closed      bool
}

// NewHub 创建订阅中心。
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[Handle]struct{}),
	}
}

// Subscribe 登记一条对 slug 的订阅。Hub 已关闭时登记被忽略。
func (h *Hub) Subscribe(slug string, handle Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	set, ok := h.subscribers[slug]
	if !ok {
		set = make(map[Handle]struct{})
		h.subscribers[slug] = set
	}
	set[handle] = struct{}{}
}

// Unsubscribe 取消订阅；slug 的订阅集合清空后随即删除整个条目，
// 以免高频来去的连接把映射撑大。
func (h *Hub) Unsubscribe(slug string, handle Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[slug]
	if !ok {
		return
	}
	delete(set, handle)
	if len(set) == 0 {
		delete(h.subscribers, slug)
	}
}

// Publish 向 slug 的全部订阅者广播一次 "update" 通知。
// 尽力而为：单个订阅者写失败不影响其余订阅者，失败的连接视为失效并被摘除。
// 返回成功送达的订阅者数量。
func (h *Hub) Publish(slug string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[slug]
	if !ok {
		return 0
	}

	delivered := 0
	for handle := range set {
		if err := handle.SendUpdate(); err != nil {
			log.Printf("[PreviewHub] 推送失败，摘除失效连接: slug=%s, error=%v", slug, err)
			delete(set, handle)
			handle.Close()
			continue
		}
		delivered++
	}
	if len(set) == 0 {
		delete(h.subscribers, slug)
	}
	return delivered
}

// Count 返回 slug 当前的订阅者数量。
func (h *Hub) Count(slug string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[slug])
}

// Close 关闭订阅中心：断开全部连接并拒绝后续登记。
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for slug, set := range h.subscribers {
		for handle := range set {
			handle.Close()
		}
		delete(h.subscribers, slug)
	}
	log.Println("[PreviewHub] 已关闭，全部预览连接断开")
}
