package repository

import (
	"sync"

	"pionex-dashboard/internal/models"
)

// MemoryBotRepository хранит записи ботов в памяти процесса.
// Данные теряются при перезапуске, это ожидаемое поведение режима
// по умолчанию. Доступ сериализуется одним мьютексом.
type MemoryBotRepository struct {
	mu   sync.RWMutex
	bots map[string]models.BotRecord
}

// NewMemoryBotRepository создает пустое in-memory хранилище
func NewMemoryBotRepository() *MemoryBotRepository {
	return &MemoryBotRepository{
		bots: make(map[string]models.BotRecord),
	}
}

// GetAll возвращает копию всех записей в произвольном порядке
func (r *MemoryBotRepository) GetAll() ([]models.BotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bots := make([]models.BotRecord, 0, len(r.bots))
	for _, bot := range r.bots {
		bots = append(bots, bot)
	}
	return bots, nil
}

// GetByName возвращает запись по имени
func (r *MemoryBotRepository) GetByName(name string) (models.BotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bot, ok := r.bots[name]
	if !ok {
		return models.BotRecord{}, ErrBotNotFound
	}
	return bot, nil
}

// Upsert создает или перезаписывает запись по имени
func (r *MemoryBotRepository) Upsert(bot models.BotRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bots[bot.Name] = bot
	return nil
}

// Delete удаляет запись по имени
func (r *MemoryBotRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bots[name]; !ok {
		return ErrBotNotFound
	}
	delete(r.bots, name)
	return nil
}

// Count возвращает число записей
func (r *MemoryBotRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bots), nil
}
