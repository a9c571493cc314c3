package services

import (
	"fmt"
	"sync"
	"time"
)

// Countdown - таймер обратного отсчета для кнопки повторной отправки кода.
// Считает целыми секундами, на нуле один раз вызывает onComplete и
// останавливается. Перезапуск - только новым экземпляром.
// Tick вынесен отдельным методом, чтобы тесты могли гнать время сами
type Countdown struct {
	mu         sync.Mutex
	seconds    int
	active     bool
	onComplete func()
	stop       chan struct{}
}

func NewCountdown(initialSeconds int, onComplete func()) *Countdown {
	return &Countdown{
		seconds:    initialSeconds,
		active:     initialSeconds > 0,
		onComplete: onComplete,
	}
}

// Tick - одна прошедшая секунда
func (c *Countdown) Tick() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.seconds--
	if c.seconds > 0 {
		c.mu.Unlock()
		return
	}
	c.seconds = 0
	c.active = false
	done := c.onComplete
	c.mu.Unlock()

	if done != nil {
		done()
	}
}

// Start запускает отсчет по настоящим секундам. Stop прерывает его досрочно
func (c *Countdown) Start() {
	c.mu.Lock()
	if c.stop != nil || !c.active {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.Tick()
				if !c.Active() {
					return
				}
			}
		}
	}()
}

func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.active = false
}

func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seconds
}

// Display форматирует остаток как MM:SS
func (c *Countdown) Display() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("%02d:%02d", c.seconds/60, c.seconds%60)
}
