package robot_service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/iwtcode/robotAdapter/internal/domain/models"
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"
)

type activePoll struct {
	ticker *time.Ticker
	done   chan bool
}

// StatusPoller периодически снимает состояние моста и публикует его в Kafka.
type StatusPoller struct {
	bridge   *Bridge
	producer interfaces.KafkaService
	logger   *logging.Logger
	mu       sync.Mutex
	poll     *activePoll
}

func NewStatusPoller(bridge *Bridge, producer interfaces.KafkaService, logger *logging.Logger) *StatusPoller {
	return &StatusPoller{
		bridge:   bridge,
		producer: producer,
		logger:   logger.WithPrefix("POLLER"),
	}
}

// IsPollingActive сообщает, запущена ли публикация статуса.
func (p *StatusPoller) IsPollingActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.poll != nil
}

// StartPolling запускает периодическую публикацию снимков состояния.
func (p *StatusPoller) StartPolling(interval time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.poll != nil {
		return fmt.Errorf("публикация статуса уже запущена")
	}

	ticker := time.NewTicker(interval)
	done := make(chan bool)
	p.poll = &activePoll{ticker: ticker, done: done}

	go func() {
		p.logger.Info("Starting status polling goroutine", "interval", interval)
		defer p.logger.Info("Status polling goroutine stopped")

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				event := models.StatusEvent{
					Status:    p.bridge.QueryStatus(),
					Timestamp: time.Now().UTC(),
				}

				jsonData, err := json.Marshal(event)
				if err != nil {
					p.logger.Error("Failed to serialize status for Kafka", "error", err)
					continue
				}

				if err := p.producer.Produce(context.Background(), []byte("status"), jsonData); err != nil {
					p.logger.Error("Failed to send status to Kafka", "error", err)
				}
			}
		}
	}()

	return nil
}

// StopPolling останавливает публикацию. Повторный вызов безопасен.
func (p *StatusPoller) StopPolling() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.poll == nil {
		return nil
	}

	p.poll.ticker.Stop()
	p.poll.done <- true
	close(p.poll.done)
	p.poll = nil
	p.logger.Info("Status polling stopped")
	return nil
}
