// Package mailbox is the in-memory message plane between agents.
//
// Each registered agent gets a Mailbox: a bounded, oldest-first-evicted
// queue of messages with running stats (received, sent, unread, urgent,
// per-type counts). Messages carrying an expiry are dropped at delivery
// time if already stale and swept out periodically afterwards.
//
// The Bus routes between mailboxes. A directed send fails when the
// recipient has no mailbox; the special "broadcast" recipient fans out
// to every other mailbox; a "role:" prefixed recipient reaches every
// current holder of that role. When a role directory is wired in, the
// bus enforces each role's canMessage list on directed sends, but only
// when both ends actually hold assignments, and self-sends always pass.
//
// Delivery tracking is optional: with it enabled the bus keeps a
// pending/delivered/read/failed record per message and recipient.
// Everything here is volatile; mailboxes die with the process.
package mailbox
