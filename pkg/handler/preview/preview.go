/*
 * @Description: 预览长连接处理器，把 WebSocket 连接挂到预览中心
 * @Author: 安知鱼
 * @Date: 2026-02-13 10:08:27
 * @LastEditTime: 2026-02-25 20:15:39
 * @LastEditors: 安知鱼
 */
package preview

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/networkk/networkk-app/pkg/domain/model"
	"github.com/networkk/networkk-app/pkg/response"
	"github.com/networkk/networkk-app/pkg/service/preview"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 45 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 预览页面由编辑后台自己承载，跨域交给网关层管
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsHandle 把一条 WebSocket 连接适配成预览中心的订阅句柄。
// 写操作串行化，预览中心和 ping 循环会并发调用。
type wsHandle struct {
	mu   sync.Mutex
	conn *websocket.Conn
	slug string
}

func (h *wsHandle) SendUpdate() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return h.conn.WriteJSON(gin.H{"type": "update", "slug": h.slug})
}

func (h *wsHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.conn.Close()
}

func (h *wsHandle) ping() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return h.conn.WriteMessage(websocket.PingMessage, nil)
}

// Handler 预览处理器
type Handler struct {
	hub *preview.Hub
}

// NewHandler 创建预览处理器
func NewHandler(hub *preview.Hub) *Handler {
	return &Handler{hub: hub}
}

// Stream 建立预览长连接
// @Summary      订阅页面预览
// @Description  升级为 WebSocket，订阅的 slug 每次内容变更都会推送一条 update 消息
// @Tags         预览
// @Param        slug  query  string  true  "页面 slug"
// @Success      101  "连接升级成功"
// @Failure      400  {object}  response.Response  "slug 不能为空"
// @Router       /preview/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" || !model.SlugPattern.MatchString(slug) {
		response.Fail(c, http.StatusBadRequest, "slug 不能为空且必须合法")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[PreviewHandler] WebSocket 升级失败: %v", err)
		return
	}

	handle := &wsHandle{conn: conn, slug: slug}
	h.hub.Subscribe(slug, handle)
	log.Printf("[PreviewHandler] 新预览订阅: slug=%s, remote=%s", slug, conn.RemoteAddr())

	conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongTimeout))
		return nil
	})

	// ping 循环保活，读循环退出时一并结束
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := handle.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// 读循环只用于感知对端关闭，预览通道是单向下行的
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	close(done)
	h.hub.Unsubscribe(slug, handle)
	conn.Close()
	log.Printf("[PreviewHandler] 预览订阅断开: slug=%s", slug)
}
