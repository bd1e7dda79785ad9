// seehuhn.de/go/jigsaw - render images as jigsaw puzzles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// rateLimiter keeps one token bucket per client.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	burst    int           // requests per interval
	interval time.Duration // time to refill the whole bucket

	done chan struct{}
	once sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter(n int, interval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		burst:    max(n, 1),
		interval: interval,
		done:     make(chan struct{}),
	}
	go rl.cleanup(time.Minute)
	return rl
}

// maxIdle is how long a client must be idle before it is forgotten. After
// this time its bucket would be full again anyway.
func (rl *rateLimiter) maxIdle() time.Duration {
	return max(5*time.Minute, rl.interval)
}

func (rl *rateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.evict(now.Add(-rl.maxIdle()))
		}
	}
}

// evict drops all clients which have not been seen since cutoff.
func (rl *rateLimiter) evict(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.once.Do(func() { close(rl.done) })
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[ip]
	if !ok {
		every := rate.Inf
		if rl.interval > 0 {
			every = rate.Every(rl.interval / time.Duration(rl.burst))
		}
		v = &visitor{limiter: rate.NewLimiter(every, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}
