/*
Package events provides an in-memory event broker for loom's pub/sub messaging.

The events package implements a lightweight event bus for broadcasting
control-plane events to interested subscribers. It supports optional
type-filtered subscriptions with asynchronous delivery, enabling loose
coupling between loom components for state changes, notifications, and
monitoring.

# Architecture

	Publisher → Event Channel (buffer: 100)
	     ↓
	Broadcast Loop
	     ↓
	Subscriber Channels (buffer: 50 each, full buffers skip)

Event Types:

	Cluster:    cluster:registered, cluster:unregistered, cluster:updated,
	            cluster:status_changed
	Health:     health:started, health:stopped, health:checked,
	            health:check_failed, health:cycle_completed
	Agent:      agent:spawned, agent:killed, agent:migrated
	Migration:  migration:started, migration:completed, migration:failed,
	            cleanup:pending, cleanup:resolved
	Roles:      role:registered, role:unregistered, role:updated,
	            assignment:assigned, assignment:unassigned
	Messaging:  message, urgent, alert, read, all-read, deleted,
	            broadcast, role-message
	Tasks:      task:created, task:updated, task:deleted,
	            task:statusChanged, list:updated

# Usage

Creating and starting the broker:

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

Subscribing to everything, or to selected types:

	all := broker.Subscribe()
	migrations := broker.SubscribeTypes(events.EventMigrationStarted,
		events.EventMigrationCompleted, events.EventMigrationFailed)
	defer broker.Unsubscribe(all)
	defer broker.Unsubscribe(migrations)

	go func() {
		for event := range migrations {
			fmt.Printf("%s %s\n", event.Type, event.Message)
		}
	}()

Publishing:

	broker.Emit(events.EventAgentSpawned, "agent placed",
		map[string]string{"agent_id": id, "cluster_id": target})

# Design

Publish is non-blocking: events go through a buffered main channel, the
broadcast loop fans out to subscriber channels, and a full subscriber
buffer skips rather than blocks. Events from one publisher reach each
subscriber in publish order; no ordering is promised across publishers.
Delivery is best-effort fire-and-forget, suitable for monitoring and
notification, not for critical state transfer.

# Integration Points

  - pkg/federation: cluster lifecycle and health events
  - pkg/balancer, pkg/proxy: spawn, kill, and migration events
  - pkg/roles, pkg/mailbox: role and message delivery events
  - pkg/taskstore: task and list mutation events
  - pkg/api, pkg/gateway: stream events to callers
*/
package events
