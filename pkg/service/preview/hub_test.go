package preview

import (
	"errors"
	"sync"
	"testing"
)

// fakeHandle 是测试用的订阅句柄，可注入发送失败。
type fakeHandle struct {
	mu      sync.Mutex
	sent    int
	closed  bool
	sendErr error
}

func (f *fakeHandle) SendUpdate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent++
	return nil
}

func (f *fakeHandle) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeHandle) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent
}

func TestHubSubscribePublish(t *testing.T) {
	h := NewHub()
	a, b := &fakeHandle{}, &fakeHandle{}

	h.Subscribe("about", a)
	h.Subscribe("about", b)
	h.Subscribe("services", &fakeHandle{})

	if n := h.Publish("about"); n != 2 {
		t.Errorf("期望送达 2 个订阅者, 实际 %d", n)
	}
	if a.sentCount() != 1 || b.sentCount() != 1 {
		t.Errorf("每个订阅者应恰好收到 1 次通知: a=%d b=%d", a.sentCount(), b.sentCount())
	}

	// 取消订阅后不再收到通知
	h.Unsubscribe("about", a)
	h.Publish("about")
	if a.sentCount() != 1 {
		t.Errorf("取消订阅后仍收到了通知: %d", a.sentCount())
	}
	if b.sentCount() != 2 {
		t.Errorf("剩余订阅者应继续收到通知: %d", b.sentCount())
	}
}

func TestHubPublishUnknownSlug(t *testing.T) {
	h := NewHub()
	if n := h.Publish("nothing-here"); n != 0 {
		t.Errorf("无订阅者的 slug 应送达 0, 实际 %d", n)
	}
}

// 单个订阅者写失败不影响其余订阅者，失效连接被摘除并关闭。
func TestHubPublishBestEffort(t *testing.T) {
	h := NewHub()
	bad := &fakeHandle{sendErr: errors.New("broken pipe")}
	good := &fakeHandle{}

	h.Subscribe("about", bad)
	h.Subscribe("about", good)

	if n := h.Publish("about"); n != 1 {
		t.Errorf("期望送达 1 个订阅者, 实际 %d", n)
	}
	if !bad.closed {
		t.Error("失效连接应被关闭")
	}
	if h.Count("about") != 1 {
		t.Errorf("失效连接应被摘除, 剩余 %d", h.Count("about"))
	}

	// 再次发布只应触达存活的订阅者
	h.Publish("about")
	if good.sentCount() != 2 {
		t.Errorf("存活订阅者应收到 2 次通知, 实际 %d", good.sentCount())
	}
}

// 集合清空后 slug 条目随即删除，防止映射无限膨胀。
func TestHubUnsubscribeDeletesEmptyEntry(t *testing.T) {
	h := NewHub()
	a := &fakeHandle{}

	h.Subscribe("about", a)
	h.Unsubscribe("about", a)

	h.mu.Lock()
	_, exists := h.subscribers["about"]
	h.mu.Unlock()
	if exists {
		t.Error("清空后的 slug 条目应被删除")
	}
}

func TestHubClose(t *testing.T) {
	h := NewHub()
	a := &fakeHandle{}
	h.Subscribe("about", a)

	h.Close()

	if !a.closed {
		t.Error("Close 应断开全部连接")
	}

	// 关闭后的登记被忽略
	b := &fakeHandle{}
	h.Subscribe("about", b)
	if n := h.Publish("about"); n != 0 {
		t.Errorf("关闭后的 Hub 不应再广播, 实际送达 %d", n)
	}
}

func TestHubConcurrentAccess(t *testing.T) {
	h := NewHub()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handle := &fakeHandle{}
			h.Subscribe("about", handle)
			h.Publish("about")
			h.Unsubscribe("about", handle)
		}()
	}
	wg.Wait()

	if h.Count("about") != 0 {
		t.Errorf("并发订阅/退订结束后应无残留: %d", h.Count("about"))
	}
}
