package balancer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/log"
	"github.com/rs/zerolog"
)

const (
	janitorKillTimeout = 10 * time.Second
	janitorMaxBackoff  = 10 * time.Minute
)

// clusterDirectory is the slice of the registry the janitor needs
type clusterDirectory interface {
	Client(clusterID string) (federation.ClusterClient, error)
}

type cleanupTask struct {
	clusterID string
	agentID   string
	attempts  int
	notBefore time.Time
}

// janitor retries force-kills of migration sources whose step (e) kill
// failed, with per-task exponential back-off.
type janitor struct {
	interval time.Duration
	clusters clusterDirectory
	broker   *events.Broker
	logger   zerolog.Logger

	mu    sync.Mutex
	queue []*cleanupTask

	stopCh chan struct{}
	doneCh chan struct{}
}

func newJanitor(interval time.Duration, clusters clusterDirectory, broker *events.Broker) *janitor {
	return &janitor{
		interval: interval,
		clusters: clusters,
		broker:   broker,
		logger:   log.WithComponent("janitor"),
	}
}

// Enqueue schedules a leftover source agent for force-kill retries
func (j *janitor) Enqueue(clusterID, agentID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.queue = append(j.queue, &cleanupTask{clusterID: clusterID, agentID: agentID})
}

// Pending reports the number of unresolved cleanup tasks
func (j *janitor) Pending() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.queue)
}

func (j *janitor) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopCh != nil {
		return
	}
	j.stopCh = make(chan struct{})
	j.doneCh = make(chan struct{})
	go j.run(j.stopCh, j.doneCh)
}

func (j *janitor) Stop() {
	j.mu.Lock()
	if j.stopCh == nil {
		j.mu.Unlock()
		return
	}
	stop, done := j.stopCh, j.doneCh
	j.stopCh = nil
	j.mu.Unlock()

	close(stop)
	<-done
}

func (j *janitor) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *janitor) sweep() {
	j.mu.Lock()
	due := make([]*cleanupTask, 0, len(j.queue))
	now := time.Now()
	for _, task := range j.queue {
		if !task.notBefore.After(now) {
			due = append(due, task)
		}
	}
	j.mu.Unlock()

	for _, task := range due {
		j.attempt(task)
	}
}

func (j *janitor) attempt(task *cleanupTask) {
	ctx, cancel := context.WithTimeout(context.Background(), janitorKillTimeout)
	defer cancel()

	client, err := j.clusters.Client(task.clusterID)
	if err == nil {
		err = client.KillAgent(ctx, task.agentID, true)
	}
	if err == nil || errdefs.IsNotFound(err) {
		// Gone, or its whole cluster is: either way the cleanup is moot
		j.remove(task)
		j.broker.Emit(events.EventCleanupResolved,
			fmt.Sprintf("Cleaned up agent %s on cluster %s", task.agentID, task.clusterID),
			map[string]string{"agent_id": task.agentID, "cluster_id": task.clusterID})
		j.logger.Info().
			Str("agent_id", task.agentID).
			Str("cluster_id", task.clusterID).
			Int("attempts", task.attempts+1).
			Msg("Cleanup resolved")
		return
	}

	task.attempts++
	backoff := j.interval << task.attempts
	if backoff > janitorMaxBackoff {
		backoff = janitorMaxBackoff
	}
	task.notBefore = time.Now().Add(backoff)
	j.logger.Warn().
		Err(err).
		Str("agent_id", task.agentID).
		Str("cluster_id", task.clusterID).
		Int("attempts", task.attempts).
		Msg("Cleanup attempt failed")
}

func (j *janitor) remove(task *cleanupTask) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, t := range j.queue {
		if t == task {
			j.queue = append(j.queue[:i], j.queue[i+1:]...)
			return
		}
	}
}
