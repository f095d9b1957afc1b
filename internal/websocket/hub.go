package websocket

import (
	"bytes"
	"sync"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"

	"pionex-dashboard/internal/metrics"
	"pionex-dashboard/internal/models"
	"pionex-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Пул буферов для сериализации broadcast сообщений
var jsonBufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// Hub управляет всеми активными WebSocket соединениями.
//
// Рассылает обновления записей ботов всем подключенным клиентам,
// избавляя frontend от необходимости периодического polling.
//
// Использование:
//  1. hub := NewHub()
//  2. go hub.Run()
//  3. hub.BroadcastBotUpdate(bot)
type Hub struct {
	// Зарегистрированные клиенты
	clients map[*Client]bool

	// Broadcast канал для отправки сообщений всем клиентам
	broadcast chan []byte

	// Регистрация нового клиента
	register chan *Client

	// Отмена регистрации клиента
	unregister chan *Client

	// Остановка главного цикла
	done chan struct{}

	// Счетчик сообщений, отброшенных при переполнении broadcast канала
	droppedMessages atomic.Int64

	mu sync.RWMutex
}

// NewHub создает новый Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run запускает главный цикл Hub.
// Должен запускаться в отдельной горутине: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			metrics.WebSocketClients.Set(float64(total))
			utils.Debugf("websocket client connected, total: %d", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			metrics.WebSocketClients.Set(float64(total))
			utils.Debugf("websocket client disconnected, total: %d", total)

		case message := <-h.broadcast:
			// Копируем список клиентов под коротким RLock,
			// отправка идет без блокировки register/unregister
			h.mu.RLock()
			clients := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				clients = append(clients, client)
			}
			h.mu.RUnlock()

			var toRemove []*Client
			for _, client := range clients {
				select {
				case client.send <- message:
				default:
					// Клиент не успевает читать, отключаем
					toRemove = append(toRemove, client)
				}
			}

			if len(toRemove) > 0 {
				h.mu.Lock()
				for _, client := range toRemove {
					if _, ok := h.clients[client]; ok {
						delete(h.clients, client)
						close(client.send)
					}
				}
				total := len(h.clients)
				h.mu.Unlock()
				metrics.WebSocketClients.Set(float64(total))
				utils.Warnf("removed %d slow websocket clients, total: %d", len(toRemove), total)
			}
		}
	}
}

// Broadcast сериализует сообщение и рассылает его всем клиентам
func (h *Hub) Broadcast(message interface{}) {
	buf := jsonBufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	if err := json.NewEncoder(buf).Encode(message); err != nil {
		utils.Errorf("marshal broadcast message: %v", err)
		jsonBufferPool.Put(buf)
		return
	}

	// Encode добавляет trailing newline
	data := buf.Bytes()
	if len(data) > 0 && data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
	}

	// Копия обязательна: буфер возвращается в пул
	msgCopy := make([]byte, len(data))
	copy(msgCopy, data)
	jsonBufferPool.Put(buf)

	// Broadcast не должен блокировать обработчики запросов:
	// при переполнении канала сообщение отбрасывается
	select {
	case h.broadcast <- msgCopy:
	default:
		h.droppedMessages.Add(1)
	}
}

// Stop останавливает главный цикл Hub
func (h *Hub) Stop() {
	close(h.done)
}

// DroppedMessages возвращает число отброшенных broadcast сообщений
func (h *Hub) DroppedMessages() int64 {
	return h.droppedMessages.Load()
}

// BroadcastBotUpdate отправляет обновление записи бота
func (h *Hub) BroadcastBotUpdate(bot models.BotRecord) {
	h.Broadcast(NewBotUpdateMessage(bot))
}

// BroadcastBotDelete отправляет удаление записи бота
func (h *Hub) BroadcastBotDelete(name string) {
	h.Broadcast(NewBotDeleteMessage(name))
}

// ClientCount возвращает количество подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
