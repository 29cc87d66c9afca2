package room

import (
	"context"
	"sync"
	"time"

	"linkup_room_server/internal/gateway/roomapi"
	"linkup_room_server/internal/model"
	"linkup_room_server/pkg/errorx"

	"go.uber.org/zap"
)

// refreshCall 一次进行中的刷新，等待者共享同一结果
type refreshCall struct {
	done chan struct{}
	err  error
}

// Store 房间集合的内存快照，整个进程只有一份
//
// 写路径只有 Refresh 一条：从后端整表拉取、成功后整体替换，
// 绝不做单条增删改（局部修补在后端数据漂移时会累积出鬼房间）。
// 刷新失败时保留旧快照——宁可陈旧，不可清空。
// 并发 Refresh 会被合并成一次后端调用，等待者共享结果。
type Store struct {
	gw roomapi.RoomGateway

	mu       sync.RWMutex
	rooms    []model.Room
	loaded   bool
	loadedAt time.Time

	callMu sync.Mutex
	call   *refreshCall
}

// NewStore 创建房间快照存储
func NewStore(gw roomapi.RoomGateway) *Store {
	return &Store{gw: gw}
}

// Snapshot 返回当前快照的副本，调用方可任意读写
func (s *Store) Snapshot() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Loaded 是否完成过至少一次成功刷新
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LoadedAt 最近一次成功刷新的时间，未加载过时为零值
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Refresh 从后端整表拉取并替换快照
// 已有刷新在途时不再发起第二次后端调用，挂起等待并返回同一结果；
// 拉取失败时快照保持原样，由调用方决定是否继续用旧数据
func (s *Store) Refresh(ctx context.Context) error {
	s.callMu.Lock()
	if s.call != nil {
		call := s.call
		s.callMu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return errorx.Wrap(ctx.Err(), errorx.CodeNetworkFailure, "等待刷新结果被取消")
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	s.call = call
	s.callMu.Unlock()

	rooms, err := s.gw.ListRooms(ctx)
	if err == nil {
		s.replace(rooms)
	} else {
		zap.L().Warn("refresh room snapshot failed, keep stale data", zap.Error(err))
	}

	s.callMu.Lock()
	s.call = nil
	s.callMu.Unlock()
	call.err = err
	close(call.done)
	return err
}

func (s *Store) replace(rooms []model.Room) {
	s.mu.Lock()
	s.rooms = rooms
	s.loaded = true
	s.loadedAt = time.Now()
	s.mu.Unlock()
}
