// Package session はセッションごとの状態(現在のページとログイン中ユーザー)を管理します。
// 状態はプロセス内メモリにのみ保持され、プロセス再起動で失われます。
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/furedea/pairs/internal/models"
)

// State は1セッション分の状態です。UserIDがnilの場合は未ログインを表します。
type State struct {
	PageID models.PageID
	UserID *models.UserID
}

// Manager はセッションIDをキーとしてStateを管理します。
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*State
}

// NewManager は新しいManagerを作成します。
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// generateSessionID はセッションIDとなるランダムな文字列を生成します。
func generateSessionID() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Start は新しいセッションを開始し、セッションIDを返します。
// 初期状態はログインページ・未ログインです。
func (m *Manager) Start() (string, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = &State{PageID: models.PageLogin}
	return sessionID, nil
}

// End はセッションを破棄します。
func (m *Manager) End(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Get はセッションの状態のコピーを返します。
func (m *Manager) Get(sessionID string) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[sessionID]
	if !ok {
		return State{}, false
	}
	return *state, true
}

// SetPage は現在のページを設定します。セッションが存在しない場合はfalseを返します。
func (m *Manager) SetPage(sessionID string, page models.PageID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[sessionID]
	if !ok {
		return false
	}
	state.PageID = page
	return true
}

// SetUser はログイン中のユーザーIDを設定します。nilでログアウト状態にします。
func (m *Manager) SetUser(sessionID string, userID *models.UserID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[sessionID]
	if !ok {
		return false
	}
	state.UserID = userID
	return true
}

// UserID はログイン中のユーザーIDを返します。未ログインの場合はnilを返します。
func (m *Manager) UserID(sessionID string) *models.UserID {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[sessionID]
	if !ok || state.UserID == nil {
		return nil
	}
	userID := *state.UserID
	return &userID
}
