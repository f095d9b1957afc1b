// Package websocket реализует real-time рассылку обновлений ботов
// подключенным клиентам дашборда.
package websocket

import (
	"pionex-dashboard/internal/models"
	"pionex-dashboard/pkg/utils"
)

// MessageType определяет тип WebSocket сообщения
type MessageType string

// Типы WebSocket сообщений
const (
	// MessageTypeBotUpdate - запись бота создана или перезаписана
	MessageTypeBotUpdate MessageType = "botUpdate"

	// MessageTypeBotDelete - запись бота удалена
	MessageTypeBotDelete MessageType = "botDelete"
)

// BaseMessage - базовая структура для всех WebSocket сообщений
type BaseMessage struct {
	Type      MessageType `json:"type"`
	Timestamp int64       `json:"timestamp"` // unix миллисекунды
}

// BotUpdateMessage - сообщение об обновлении записи бота
type BotUpdateMessage struct {
	BaseMessage
	Data models.BotRecord `json:"data"`
}

// BotDeleteMessage - сообщение об удалении записи бота
type BotDeleteMessage struct {
	BaseMessage
	Name string `json:"name"`
}

// NewBotUpdateMessage создает сообщение обновления бота
func NewBotUpdateMessage(bot models.BotRecord) *BotUpdateMessage {
	return &BotUpdateMessage{
		BaseMessage: BaseMessage{
			Type:      MessageTypeBotUpdate,
			Timestamp: utils.NowMillis(),
		},
		Data: bot,
	}
}

// NewBotDeleteMessage создает сообщение удаления бота
func NewBotDeleteMessage(name string) *BotDeleteMessage {
	return &BotDeleteMessage{
		BaseMessage: BaseMessage{
			Type:      MessageTypeBotDelete,
			Timestamp: utils.NowMillis(),
		},
		Name: name,
	}
}
