package models

// BotRecord описывает вручную зарегистрированного фьючерсного бота.
// Записи хранятся по имени и отдаются в /api/bots как есть.
type BotRecord struct {
	Name          string   `json:"name"`
	Pair          string   `json:"pair"`
	Leverage      float64  `json:"leverage"`
	Investment    float64  `json:"investment"`
	Profit        float64  `json:"profit"`
	ProfitPercent float64  `json:"profitPercent"`
	LastPrice     float64  `json:"lastPrice"`
	MarkPrice     float64  `json:"markPrice"`
	LiqPrice      *float64 `json:"liqPrice"`  // null, пока цена ликвидации неизвестна
	UpdatedAt     int64    `json:"updatedAt"` // unix миллисекунды
}
