package session

import (
	"log"
	"sync"
	"time"
)

// SessionManager хранит сессии всех активных диалогов, по одной на пользователя.
// Доступ к карте защищен мьютексом: диалоги разных пользователей независимы
// и обрабатываются конкурентно.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewSessionManager создает и возвращает новый экземпляр SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[int64]Session),
	}
}

// Start создает новую сессию для пользователя, отбрасывая прежнюю, если была.
// Возвращает вытесненную сессию (exists=true), чтобы вызывающая сторона могла
// убрать ее медиафайлы.
func (sm *SessionManager) Start(chatID int64, username string) (previous Session, exists bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	previous, exists = sm.sessions[chatID]
	sm.sessions[chatID] = NewSession(chatID, username)
	log.Printf("SessionManager.Start: Новая сессия для chatID %d (прежняя существовала: %v).", chatID, exists)
	return previous, exists
}

// Get возвращает копию сессии пользователя.
func (sm *SessionManager) Get(chatID int64) (Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sess, ok := sm.sessions[chatID]
	return sess, ok
}

// Update записывает измененную сессию обратно и обновляет отметку активности.
func (sm *SessionManager) Update(sess Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sess.UpdatedAt = time.Now()
	sm.sessions[sess.ChatID] = sess
}

// Clear удаляет сессию пользователя. Медиафайлы удаляет вызывающая сторона.
func (sm *SessionManager) Clear(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, ok := sm.sessions[chatID]; ok {
		delete(sm.sessions, chatID)
		log.Printf("SessionManager.Clear: Сессия для chatID %d удалена.", chatID)
	}
}

// Count возвращает число активных сессий.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// StartReaper запускает фоновую чистку простаивающих сессий. Отключаемая
// опция: источник хранил сессии бессрочно, поэтому TTL по умолчанию выключен.
// onExpire вызывается для каждой вытесненной сессии (для удаления ее медиа).
func (sm *SessionManager) StartReaper(ttl time.Duration, onExpire func(Session)) {
	if ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(ttl / 2)
		defer ticker.Stop()
		for range ticker.C {
			for _, sess := range sm.expire(ttl) {
				log.Printf("SessionManager: Сессия chatID %d простаивала дольше %s и удалена.", sess.ChatID, ttl)
				if onExpire != nil {
					onExpire(sess)
				}
			}
		}
	}()
}

// expire удаляет и возвращает сессии, не обновлявшиеся дольше ttl.
func (sm *SessionManager) expire(ttl time.Duration) []Session {
	deadline := time.Now().Add(-ttl)
	sm.mu.Lock()
	defer sm.mu.Unlock()
	var expired []Session
	for chatID, sess := range sm.sessions {
		if sess.UpdatedAt.Before(deadline) {
			expired = append(expired, sess)
			delete(sm.sessions, chatID)
		}
	}
	return expired
}
