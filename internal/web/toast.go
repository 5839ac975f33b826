// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/biolink/internal/profile"
)

// DefaultToastCapacity bounds the pending notice queue.
const DefaultToastCapacity = 32

// Notice is one pending toast.
type Notice struct {
	Message string             `json:"message"`
	Kind    profile.NoticeKind `json:"kind"`
	At      time.Time          `json:"at"`
}

// ToastQueue buffers notices until the page polls for them.
//
// There is one session per process, so there is one queue per process. When
// full, the oldest notice is dropped.
type ToastQueue struct {
	mu       sync.Mutex
	notices  []Notice
	capacity int
	now      func() time.Time
}

// NewToastQueue constructs a queue holding at most capacity notices.
func NewToastQueue(capacity int) *ToastQueue {
	if capacity <= 0 {
		capacity = DefaultToastCapacity
	}
	return &ToastQueue{capacity: capacity, now: time.Now}
}

// Notify implements [profile.Notifier].
func (queue *ToastQueue) Notify(_ context.Context, message string, kind profile.NoticeKind) {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	if len(queue.notices) == queue.capacity {
		queue.notices = queue.notices[1:]
	}
	queue.notices = append(queue.notices, Notice{Message: message, Kind: kind, At: queue.now()})
}

// Drain returns the pending notices, oldest first, and empties the queue.
func (queue *ToastQueue) Drain() []Notice {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	drained := queue.notices
	queue.notices = nil
	if drained == nil {
		drained = []Notice{}
	}
	return drained
}
